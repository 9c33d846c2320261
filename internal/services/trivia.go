package services

import (
	"math/rand"
	"strconv"
	"sync"

	"trivia-api-backend/internal/models"
)

type TriviaService struct {
	questions  QuestionStore
	categories CategoryStore

	mu  sync.Mutex
	rng *rand.Rand
}

// NewTriviaService wires the service to its stores. The random source is
// injected so tests can seed it.
func NewTriviaService(questions QuestionStore, categories CategoryStore, rng *rand.Rand) *TriviaService {
	return &TriviaService{
		questions:  questions,
		categories: categories,
		rng:        rng,
	}
}

func (s *TriviaService) Categories() ([]models.Category, error) {
	return s.categories.All()
}

func (s *TriviaService) Questions() ([]models.Question, error) {
	return s.questions.All()
}

// QuestionsByCategory matches against the stored string form of the
// category id.
func (s *TriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	return s.questions.ByCategory(strconv.FormatUint(uint64(categoryID), 10))
}

func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	return s.questions.Search(term)
}

func (s *TriviaService) AddQuestion(question, answer string, category string, difficulty int) error {
	q := models.Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
	return s.questions.Create(&q)
}

func (s *TriviaService) DeleteQuestion(id uint) error {
	if _, err := s.questions.ByID(id); err != nil {
		return err
	}
	return s.questions.Delete(id)
}

// NextQuizQuestion picks one unseen question uniformly at random. A selector
// of zero means all categories. A nil question with a nil error means the
// category is exhausted and the round is over.
func (s *TriviaService) NextQuizQuestion(categoryID int, previousQuestions []uint) (*models.Question, error) {
	if categoryID < 0 {
		return nil, ErrInvalidCategory
	}

	var (
		candidates []models.Question
		err        error
	)
	if categoryID == 0 {
		candidates, err = s.questions.All()
	} else {
		candidates, err = s.questions.ByCategory(strconv.Itoa(categoryID))
	}
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoQuestions
	}

	seen := make(map[uint]struct{}, len(previousQuestions))
	for _, id := range previousQuestions {
		seen[id] = struct{}{}
	}

	var remaining []models.Question
	for _, q := range candidates {
		if _, asked := seen[q.ID]; !asked {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	pick := remaining[s.rng.Intn(len(remaining))]
	s.mu.Unlock()
	return &pick, nil
}
