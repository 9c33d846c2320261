package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia-api-backend/internal/services"
)

type QuizHandler struct {
	trivia *services.TriviaService
}

func NewQuizHandler(trivia *services.TriviaService) *QuizHandler {
	return &QuizHandler{trivia: trivia}
}

type QuizCategory struct {
	ID   flexInt `json:"id" swaggertype:"integer"`
	Type string  `json:"type"`
}

type QuizRequest struct {
	PreviousQuestions []uint       `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}

// QuizResponse carries either the next question or false once the category
// is exhausted.
type QuizResponse struct {
	Success  bool        `json:"success"`
	Question interface{} `json:"question" swaggertype:"object"`
}

// NextQuestion godoc
// @Summary      Get the next quiz question
// @Description  Pick a random question not yet asked this round. Category 0 plays all categories.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Previous question ids and selected category"
// @Success      200 {object} QuizResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.trivia.NextQuizQuestion(int(req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	if question == nil {
		// Every question in the category has been asked.
		c.JSON(http.StatusOK, QuizResponse{Success: true, Question: false})
		return
	}

	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}
