package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trivia-api-backend/internal/services"
)

type CategoryHandler struct {
	trivia *services.TriviaService
}

func NewCategoryHandler(trivia *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{trivia: trivia}
}

type CategoriesResponse struct {
	Success    bool            `json:"success" example:"true"`
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory uint       `json:"current_category"`
}

// ListCategories godoc
// @Summary      List all categories
// @Description  Get every category as an id to label mapping
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.trivia.Categories()
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}
	if len(categories) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categoryMap(categories),
	})
}

// ListCategoryQuestions godoc
// @Summary      List questions in a category
// @Description  Get a page of questions belonging to one category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        page query int false "Page number (10 questions per page)"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	questions, err := h.trivia.QuestionsByCategory(uint(categoryID))
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	// An empty category is reported in-band rather than as a 404. Existing
	// clients key off the success flag for this route.
	page := services.PaginateQuestions(pageParam(c), questions)
	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         len(questions) > 0,
		Questions:       page,
		TotalQuestions:  len(questions),
		CurrentCategory: uint(categoryID),
	})
}
