package repository

import (
	"fmt"

	"gorm.io/gorm"

	"trivia-api-backend/internal/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) All() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("type ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
