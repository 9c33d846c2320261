package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trivia-api-backend/internal/services"
)

type QuestionHandler struct {
	trivia *services.TriviaService
}

func NewQuestionHandler(trivia *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{trivia: trivia}
}

type AddQuestionRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Difficulty *flexInt `json:"difficulty" swaggertype:"integer"`
	Category   *flexInt `json:"category" swaggertype:"integer"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type QuestionListResponse struct {
	Success         bool            `json:"success"`
	Questions       []Question      `json:"questions"`
	TotalQuestions  int             `json:"total_questions"`
	CurrentCategory string          `json:"current_category"`
	Categories      map[uint]string `json:"categories"`
}

// SearchResponse keeps the camel-cased keys this route has always used.
type SearchResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"totalQuestions"`
	CurrentCategory string     `json:"currentCategory"`
}

// ListQuestions godoc
// @Summary      List all questions
// @Description  Get a page of questions across every category
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number (10 questions per page)"
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.trivia.Questions()
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	page := services.PaginateQuestions(pageParam(c), questions)
	if len(page) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	categories, err := h.trivia.Categories()
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		CurrentCategory: "All Categories",
		Categories:      categoryMap(categories),
	})
}

// AddQuestion godoc
// @Summary      Add a question
// @Description  Create a new question with its answer, category and difficulty
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body AddQuestionRequest true "Question data"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	if req.Question == nil || *req.Question == "" ||
		req.Answer == nil || *req.Answer == "" ||
		req.Difficulty == nil || req.Category == nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	category := strconv.Itoa(int(*req.Category))
	if err := h.trivia.AddQuestion(*req.Question, *req.Answer, category, int(*req.Difficulty)); err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	if err := h.trivia.DeleteQuestion(uint(questionID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound)
			return
		}
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring search over question text
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Success      200 {object} SearchResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	// A missing body or term searches for everything.
	var req SearchRequest
	_ = c.ShouldBindJSON(&req)

	questions, err := h.trivia.SearchQuestions(req.SearchTerm)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	page := services.PaginateQuestions(pageParam(c), questions)
	if len(page) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		CurrentCategory: "",
	})
}
