package repository

import (
	"context"
	"time"

	"github.com/adishm/hackarena/internal/models"
)

// UserRepository defines user account data operations
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash, name, college, phone string, role models.Role) (int64, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetCredentials(ctx context.Context, email string) (int, string, error)
	ListParticipants(ctx context.Context) ([]models.User, error)
	SetUserTeam(ctx context.Context, userID int, teamID *int) error
	DeleteUser(ctx context.Context, id int) error
}

// TeamRepository defines team data operations
type TeamRepository interface {
	CreateTeam(ctx context.Context, name string, leaderID int, checkInCode string) (int64, error)
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsByPayment(ctx context.Context, status models.PaymentStatus) ([]models.Team, error)
	TeamExists(ctx context.Context, name string) (bool, error)
	CountMembers(ctx context.Context, teamID int) (int, error)
	SetPaymentStatus(ctx context.Context, teamID int, status models.PaymentStatus) error
	SetPaymentProof(ctx context.Context, teamID int, transactionID, proofPath string) error
	SetRound1Aggregate(ctx context.Context, teamID int, score, avgTime float64) error
	SetRound2Status(ctx context.Context, teamID int, status models.Round2Status) error
	SetFinalist(ctx context.Context, teamID int, finalist bool) error
	DeleteTeamWithMembers(ctx context.Context, teamID int) error
}

// QuestionRepository defines question bank data operations
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, q models.Question) (int64, error)
	GetQuestion(ctx context.Context, id int) (*models.Question, error)
	ListQuestions(ctx context.Context, round int) ([]models.Question, error)
	UpdateQuestion(ctx context.Context, q models.Question) error
	DeleteQuestion(ctx context.Context, id int) error
	CountQuestions(ctx context.Context, round int) (int, error)
	AnswerKey(ctx context.Context, round int) (map[int]int, error)
}

// SubmissionRepository defines submission data operations for both rounds
type SubmissionRepository interface {
	CreateQuizAttempt(ctx context.Context, userID, teamID int, startTime time.Time) (int64, error)
	GetSubmission(ctx context.Context, id int) (*models.Submission, error)
	GetQuizSubmission(ctx context.Context, userID int) (*models.Submission, error)
	CompleteQuizAttempt(ctx context.Context, id int, answers []models.Answer, score int, endTime time.Time) (bool, error)
	DeleteQuizSubmission(ctx context.Context, userID int) (int, error)
	ListCompletedQuizSubmissions(ctx context.Context, teamID int) ([]models.Submission, error)
	CreateProjectSubmission(ctx context.Context, userID, teamID int, filePath, notes string) (int64, error)
	GetProjectSubmission(ctx context.Context, teamID int) (*models.Submission, error)
	ListProjectSubmissions(ctx context.Context) ([]models.Submission, error)
}

// StateRepository defines hackathon state data operations
type StateRepository interface {
	GetState(ctx context.Context) (*models.HackathonState, error)
	SetRoundStatus(ctx context.Context, round int, status models.RoundStatus, deadline *time.Time) error
	SetCertificatePath(ctx context.Context, round int, path string) error
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	UserRepository
	TeamRepository
	QuestionRepository
	SubmissionRepository
	StateRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
