package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"trivia-api-backend/internal/models"
)

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type Category = models.Category

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not Found"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
}

// respondError writes the fixed error envelope shared by every failure path.
func respondError(c *gin.Context, status int) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: statusMessages[status],
	})
}

// NotFound handles requests to unregistered routes.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound)
}

// MethodNotAllowed handles requests with the wrong verb for a known route.
func MethodNotAllowed(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed)
}

// pageParam reads the 1-based page query parameter, falling back to the
// first page for missing or non-numeric values.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func categoryMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, cat := range categories {
		m[cat.ID] = cat.Type
	}
	return m
}

// flexInt accepts both JSON numbers and numeric strings; clients send
// difficulty and category interchangeably in either form.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	n, err := strconv.Atoi(strings.Trim(string(data), `"`))
	if err != nil {
		return fmt.Errorf("not an integer: %s", data)
	}
	*f = flexInt(n)
	return nil
}
