package handlers

import (
	"time"

	"github.com/adishm/hackarena/internal/models"
)

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	College  string `json:"college"`
	Phone    string `json:"phone"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TeamCreateRequest represents a request to create a team
type TeamCreateRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest represents a request to add a member to a team
type AddMemberRequest struct {
	Email string `json:"email"`
}

// QuestionRequest represents a request to create or update a question
type QuestionRequest struct {
	Round         int        `json:"round"`
	Title         string     `json:"title"`
	Options       []string   `json:"options"`
	CorrectOption *int       `json:"correct_option"`
	Description   string     `json:"description"`
	Deadline      *time.Time `json:"deadline"`
}

// QuizSubmitRequest represents a quiz submission
type QuizSubmitRequest struct {
	Answers []models.Answer `json:"answers"`
}

// RoundStatusRequest represents a request to change a round's status
type RoundStatusRequest struct {
	Status   string     `json:"status"`
	Deadline *time.Time `json:"deadline"`
}
