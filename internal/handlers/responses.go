package handlers

import "github.com/adishm/hackarena/internal/models"

// AuthResponse is the response for register and login
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// QuizSubmissionResponse is the response for the my-submission endpoint
type QuizSubmissionResponse struct {
	Submission     *models.Submission `json:"submission"`
	TotalQuestions int                `json:"total_questions"`
}
