package services

import "trivia-api-backend/internal/models"

const QuestionsPerPage = 10

// PaginateQuestions returns the 1-based page of a question list. Pages below
// one fall back to the first page; pages past the end yield an empty slice.
// Whether an empty page is an error is up to the caller.
func PaginateQuestions(page int, questions []models.Question) []models.Question {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []models.Question{}
	}

	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
