package main

import (
	"log"
	"math/rand"
	"time"

	"trivia-api-backend/internal/config"
	"trivia-api-backend/internal/database"
	"trivia-api-backend/internal/handlers"
	"trivia-api-backend/internal/logger"
	"trivia-api-backend/internal/middleware"
	"trivia-api-backend/internal/repository"
	"trivia-api-backend/internal/services"

	_ "trivia-api-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     REST API serving trivia questions and categories
// @host            localhost:8080
// @BasePath        /

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := database.Connect(cfg, zlog)
	database.AutoMigrate(db, zlog)
	database.Seed(db, zlog)

	questionRepo := repository.NewQuestionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	trivia := services.NewTriviaService(
		questionRepo,
		categoryRepo,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	categoryHandler := handlers.NewCategoryHandler(trivia)
	questionHandler := handlers.NewQuestionHandler(trivia)
	quizHandler := handlers.NewQuizHandler(trivia)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.HandleMethodNotAllowed = true
	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.ListCategoryQuestions)
	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.AddQuestion)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/search", questionHandler.SearchQuestions)
	r.POST("/quizzes", quizHandler.NextQuestion)

	addr := ":" + cfg.ServerPort
	zlog.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
