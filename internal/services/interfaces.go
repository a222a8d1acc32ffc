package services

import (
	"context"
	"io"
	"time"

	"github.com/adishm/hackarena/internal/models"
)

// Broadcaster defines the interface for broadcasting messages to clients
type Broadcaster interface {
	BroadcastMessage(msgType string, payload interface{})
}

// AccountServicer defines the interface for account operations
type AccountServicer interface {
	Register(ctx context.Context, reg Registration) (*models.User, error)
	CreateAdmin(ctx context.Context, email, password, name string) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	Profile(ctx context.Context, userID int) (*models.User, error)
	ListParticipants(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int) error
}

// TeamServicer defines the interface for team operations
type TeamServicer interface {
	CreateTeam(ctx context.Context, user *models.User, name string) (*models.Team, error)
	GetTeam(ctx context.Context, teamID int) (*models.Team, error)
	MyTeam(ctx context.Context, user *models.User) (*models.Team, error)
	AddMember(ctx context.Context, actor *models.User, teamID int, email string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	VerifyPayment(ctx context.Context, teamID int) (*models.Team, error)
	SubmitPaymentProof(ctx context.Context, user *models.User, transactionID, filename string, file io.Reader) (*models.Team, error)
	DeleteTeam(ctx context.Context, teamID int) error
	CheckInQR(ctx context.Context, teamID int) ([]byte, error)
}

// QuestionServicer defines the interface for question bank operations
type QuestionServicer interface {
	Create(ctx context.Context, in QuestionInput) (*models.Question, error)
	List(ctx context.Context, round int) ([]models.Question, error)
	ListWithAnswers(ctx context.Context, round int) ([]models.Question, error)
	Update(ctx context.Context, id int, in QuestionInput) (*models.Question, error)
	Delete(ctx context.Context, id int) error
}

// QuizServicer defines the interface for round-1 quiz operations
type QuizServicer interface {
	StartAttempt(ctx context.Context, user *models.User) (*QuizStart, error)
	SubmitAttempt(ctx context.Context, user *models.User, submissionID int, answers []models.Answer) (*QuizResult, error)
	MySubmission(ctx context.Context, user *models.User) (*models.Submission, int, error)
	ResetAttempt(ctx context.Context, user *models.User) error
	RecomputeTeamAggregate(ctx context.Context, teamID int) error
	SetBroadcaster(b Broadcaster)
}

// ResultsServicer defines the interface for leaderboard operations
type ResultsServicer interface {
	Round1Leaderboard(ctx context.Context) (*Leaderboard, error)
	TeamAdvanced(ctx context.Context, teamID int) (bool, error)
}

// Round2Servicer defines the interface for project-round operations
type Round2Servicer interface {
	SubmitProject(ctx context.Context, user *models.User, notes, filename string, file io.Reader) (*models.Submission, error)
	TeamSubmission(ctx context.Context, user *models.User) (*models.Submission, error)
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	AdvanceToFinale(ctx context.Context, teamID int) (*models.Team, error)
}

// StateServicer defines the interface for hackathon phase operations
type StateServicer interface {
	State(ctx context.Context) (*models.HackathonState, error)
	SetRoundStatus(ctx context.Context, round int, status models.RoundStatus, deadline *time.Time) (*models.HackathonState, error)
	UploadCertificate(ctx context.Context, round int, filename string, file io.Reader) (*models.HackathonState, error)
	SetBroadcaster(b Broadcaster)
}

// Ensure concrete types implement interfaces
var (
	_ AccountServicer  = (*AccountService)(nil)
	_ TeamServicer     = (*TeamService)(nil)
	_ QuestionServicer = (*QuestionService)(nil)
	_ QuizServicer     = (*QuizService)(nil)
	_ ResultsServicer  = (*ResultsService)(nil)
	_ Round2Servicer   = (*Round2Service)(nil)
	_ StateServicer    = (*StateService)(nil)
)
