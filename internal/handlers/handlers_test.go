package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia-api-backend/internal/models"
	"trivia-api-backend/internal/services"
)

type memQuestionStore struct {
	questions []models.Question
	nextID    uint
	err       error
}

func newMemQuestionStore(questions []models.Question) *memQuestionStore {
	var maxID uint
	for _, q := range questions {
		if q.ID > maxID {
			maxID = q.ID
		}
	}
	return &memQuestionStore{questions: questions, nextID: maxID + 1}
}

func (s *memQuestionStore) All() ([]models.Question, error) {
	return s.questions, s.err
}

func (s *memQuestionStore) ByCategory(category string) ([]models.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	var matched []models.Question
	for _, q := range s.questions {
		if q.Category == category {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (s *memQuestionStore) Search(term string) ([]models.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	var matched []models.Question
	for _, q := range s.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (s *memQuestionStore) ByID(id uint) (*models.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, q := range s.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, services.ErrNotFound
}

func (s *memQuestionStore) Create(q *models.Question) error {
	if s.err != nil {
		return s.err
	}
	q.ID = s.nextID
	s.nextID++
	s.questions = append(s.questions, *q)
	return nil
}

func (s *memQuestionStore) Delete(id uint) error {
	if s.err != nil {
		return s.err
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return nil
}

type memCategoryStore struct {
	categories []models.Category
}

func (s *memCategoryStore) All() ([]models.Category, error) {
	return s.categories, nil
}

func newTestRouter(questions *memQuestionStore, categories *memCategoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	trivia := services.NewTriviaService(questions, categories, rand.New(rand.NewSource(7)))
	categoryHandler := NewCategoryHandler(trivia)
	questionHandler := NewQuestionHandler(trivia)
	quizHandler := NewQuizHandler(trivia)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.ListCategoryQuestions)
	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.AddQuestion)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/search", questionHandler.SearchQuestions)
	r.POST("/quizzes", quizHandler.NextQuestion)
	return r
}

func defaultCategories() []models.Category {
	return []models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}
}

func fixtureQuestions(n int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, models.Question{
			ID:         uint(i),
			Question:   fmt.Sprintf("question %d", i),
			Answer:     fmt.Sprintf("answer %d", i),
			Category:   "1",
			Difficulty: 2,
		})
	}
	return questions
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListCategories(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(nil), &memCategoryStore{categories: defaultCategories()})

	w := doRequest(r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]interface{}{"1": "Science", "2": "Art"}, body["categories"])
}

func TestListCategoriesEmpty(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(nil), &memCategoryStore{})

	w := doRequest(r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["error"])
	assert.Equal(t, "Not Found", body["message"])
}

func TestListQuestionsFirstPage(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(25)), &memCategoryStore{categories: defaultCategories()})

	w := doRequest(r, http.MethodGet, "/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(25), body["total_questions"])
	assert.Equal(t, "All Categories", body["current_category"])

	questions := body["questions"].([]interface{})
	require.Len(t, questions, 10)
	first := questions[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])

	categories := body["categories"].(map[string]interface{})
	assert.Len(t, categories, 2)
}

func TestListQuestionsPartialPage(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(25)), &memCategoryStore{categories: defaultCategories()})

	w := doRequest(r, http.MethodGet, "/questions?page=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	questions := body["questions"].([]interface{})
	require.Len(t, questions, 5)
	first := questions[0].(map[string]interface{})
	assert.Equal(t, float64(21), first["id"])
}

func TestListQuestionsPageBeyondEnd(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(25)), &memCategoryStore{categories: defaultCategories()})

	w := doRequest(r, http.MethodGet, "/questions?page=4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListQuestionsBadPageParam(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(12)), &memCategoryStore{categories: defaultCategories()})

	w := doRequest(r, http.MethodGet, "/questions?page=abc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	questions := body["questions"].([]interface{})
	assert.Len(t, questions, 10)
}

func TestListCategoryQuestions(t *testing.T) {
	questions := fixtureQuestions(3)
	questions[2].Category = "2"
	r := newTestRouter(newMemQuestionStore(questions), &memCategoryStore{categories: defaultCategories()})

	w := doRequest(r, http.MethodGet, "/categories/1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total_questions"])
	assert.Equal(t, float64(1), body["current_category"])
	assert.Len(t, body["questions"].([]interface{}), 2)
}

func TestListCategoryQuestionsEmptyCategory(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(3)), &memCategoryStore{categories: defaultCategories()})

	// Category 5 has no questions: in-band failure with HTTP 200.
	w := doRequest(r, http.MethodGet, "/categories/5/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(0), body["total_questions"])
	assert.Empty(t, body["questions"])
}

func TestListCategoryQuestionsQueryFailure(t *testing.T) {
	store := newMemQuestionStore(nil)
	store.err = errors.New("connection reset")
	r := newTestRouter(store, &memCategoryStore{categories: defaultCategories()})

	w := doRequest(r, http.MethodGet, "/categories/1/questions", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Unprocessable", body["message"])
}

func TestAddQuestion(t *testing.T) {
	store := newMemQuestionStore(nil)
	r := newTestRouter(store, &memCategoryStore{categories: defaultCategories()})

	w := doRequest(r, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "What type of paint does Bob Ross use?",
		"answer":     "Oil",
		"difficulty": "2",
		"category":   "2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	require.Len(t, store.questions, 1)
	assert.Equal(t, "2", store.questions[0].Category)
	assert.Equal(t, 2, store.questions[0].Difficulty)
}

func TestAddQuestionMissingFields(t *testing.T) {
	full := map[string]interface{}{
		"question":   "Where do you look to see the sky?",
		"answer":     "Up",
		"difficulty": 1,
		"category":   1,
	}

	for field := range full {
		t.Run("missing "+field, func(t *testing.T) {
			r := newTestRouter(newMemQuestionStore(nil), &memCategoryStore{})

			partial := map[string]interface{}{}
			for k, v := range full {
				if k != field {
					partial[k] = v
				}
			}

			w := doRequest(r, http.MethodPost, "/questions", partial)
			require.Equal(t, http.StatusBadRequest, w.Code)

			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Bad Request", body["message"])
		})
	}
}

func TestAddQuestionNonNumericDifficulty(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(nil), &memCategoryStore{})

	w := doRequest(r, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "Where do you look to see the sky?",
		"answer":     "Down",
		"difficulty": "F",
		"category":   "1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteQuestion(t *testing.T) {
	store := newMemQuestionStore(fixtureQuestions(2))
	r := newTestRouter(store, &memCategoryStore{})

	w := doRequest(r, http.MethodDelete, "/questions/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.questions, 1)

	// Deleting the same id again is a miss.
	w = doRequest(r, http.MethodDelete, "/questions/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchQuestions(t *testing.T) {
	questions := fixtureQuestions(2)
	questions[0].Question = "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?"
	questions[1].Question = "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"
	r := newTestRouter(newMemQuestionStore(questions), &memCategoryStore{})

	w := doRequest(r, http.MethodPost, "/search", map[string]interface{}{"searchTerm": "OSCAR"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["totalQuestions"])
	assert.Equal(t, "", body["currentCategory"])
	assert.Len(t, body["questions"].([]interface{}), 1)
}

func TestSearchQuestionsNoMatch(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(2)), &memCategoryStore{})

	w := doRequest(r, http.MethodPost, "/search", map[string]interface{}{"searchTerm": "xyzzy"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuizNextQuestion(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(4)), &memCategoryStore{})

	w := doRequest(r, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{1, 2, 3},
		"quiz_category":      map[string]interface{}{"id": 0},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	question := body["question"].(map[string]interface{})
	assert.Equal(t, float64(4), question["id"])
}

func TestQuizExhaustedCategory(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(3)), &memCategoryStore{})

	w := doRequest(r, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{1, 2, 3},
		"quiz_category":      map[string]interface{}{"id": 0},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["question"])
}

func TestQuizNegativeCategory(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(3)), &memCategoryStore{})

	w := doRequest(r, http.MethodPost, "/quizzes", map[string]interface{}{
		"quiz_category": map[string]interface{}{"id": -1},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestQuizUnknownCategory(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(fixtureQuestions(3)), &memCategoryStore{})

	w := doRequest(r, http.MethodPost, "/quizzes", map[string]interface{}{
		"quiz_category": map[string]interface{}{"id": 9},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(nil), &memCategoryStore{})

	w := doRequest(r, http.MethodPut, "/questions", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Method Not Allowed", body["message"])
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(newMemQuestionStore(nil), &memCategoryStore{})

	w := doRequest(r, http.MethodGet, "/category", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Not Found", body["message"])
}
