package services

import (
	"errors"

	"trivia-api-backend/internal/models"
)

var (
	// ErrNotFound signals a missing record, mapped to 404 at the handler boundary.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCategory signals a negative quiz category selector.
	ErrInvalidCategory = errors.New("invalid quiz category")
	// ErrNoQuestions signals an empty candidate set for quiz selection.
	ErrNoQuestions = errors.New("no questions available")
)

// QuestionStore is the persistence contract for questions. Implementations
// must return results ordered by id ascending.
type QuestionStore interface {
	All() ([]models.Question, error)
	ByCategory(category string) ([]models.Question, error)
	Search(term string) ([]models.Question, error)
	ByID(id uint) (*models.Question, error)
	Create(q *models.Question) error
	Delete(id uint) error
}

// CategoryStore is the persistence contract for categories. All must return
// categories ordered by their type label ascending.
type CategoryStore interface {
	All() ([]models.Category, error)
}
