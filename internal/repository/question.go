package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trivia-api-backend/internal/models"
	"trivia-api-backend/internal/services"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) All() ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) ByCategory(category string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Where("category = ?", category).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) Search(term string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) ByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

func (r *QuestionRepository) Create(q *models.Question) error {
	if err := r.db.Create(q).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Question{}, id).Error; err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}
