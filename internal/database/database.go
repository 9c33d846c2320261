package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trivia-api-backend/internal/config"
	"trivia-api-backend/internal/models"
)

func Connect(cfg *config.Config, log *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	log.Info("database connected")
	return db
}

func AutoMigrate(db *gorm.DB, log *zap.Logger) {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		log.Fatal("failed to auto-migrate", zap.Error(err))
	}
	log.Info("database migrated")
}

// Seed inserts the canonical trivia categories into an empty database so a
// fresh deployment has something to play with.
func Seed(db *gorm.DB, log *zap.Logger) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Fatal("failed to count categories", zap.Error(err))
	}
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
		{Type: "History"},
		{Type: "Entertainment"},
		{Type: "Sports"},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Fatal("failed to seed categories", zap.Error(err))
	}
	log.Info("seeded default categories", zap.Int("count", len(categories)))
}
