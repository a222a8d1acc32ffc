package mock

import (
	"context"
	"time"

	"github.com/adishm/hackarena/internal/models"
	"github.com/adishm/hackarena/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.AnswerKeyError = errors.New("database error")
//	svc := services.NewQuizService(log, mockRepo)
//	_, err := svc.SubmitAttempt(ctx, user, id, answers)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== User Errors =====
	CreateUserError       error
	GetUserError          error
	GetUserByEmailError   error
	GetCredentialsError   error
	ListParticipantsError error
	SetUserTeamError      error
	DeleteUserError       error

	// ===== Team Errors =====
	CreateTeamError            error
	GetTeamError               error
	ListTeamsError             error
	ListTeamsByPaymentError    error
	CountMembersError          error
	SetPaymentStatusError      error
	SetPaymentProofError       error
	SetRound1AggregateError    error
	SetRound2StatusError       error
	SetFinalistError           error
	DeleteTeamWithMembersError error

	// ===== Question Errors =====
	CreateQuestionError error
	GetQuestionError    error
	ListQuestionsError  error
	UpdateQuestionError error
	DeleteQuestionError error
	CountQuestionsError error
	AnswerKeyError      error

	// ===== Submission Errors =====
	CreateQuizAttemptError            error
	GetSubmissionError                error
	GetQuizSubmissionError            error
	CompleteQuizAttemptError          error
	DeleteQuizSubmissionError         error
	ListCompletedQuizSubmissionsError error
	CreateProjectSubmissionError      error
	GetProjectSubmissionError         error
	ListProjectSubmissionsError       error

	// ===== State Errors =====
	GetStateError           error
	SetRoundStatusError     error
	SetCertificatePathError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== User Methods =====

func (m *Repository) CreateUser(ctx context.Context, email, passwordHash, name, college, phone string, role models.Role) (int64, error) {
	if m.CreateUserError != nil {
		return 0, m.CreateUserError
	}
	return m.FullRepository.CreateUser(ctx, email, passwordHash, name, college, phone, role)
}

func (m *Repository) GetUser(ctx context.Context, id int) (*models.User, error) {
	if m.GetUserError != nil {
		return nil, m.GetUserError
	}
	return m.FullRepository.GetUser(ctx, id)
}

func (m *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetUserByEmailError != nil {
		return nil, m.GetUserByEmailError
	}
	return m.FullRepository.GetUserByEmail(ctx, email)
}

func (m *Repository) GetCredentials(ctx context.Context, email string) (int, string, error) {
	if m.GetCredentialsError != nil {
		return 0, "", m.GetCredentialsError
	}
	return m.FullRepository.GetCredentials(ctx, email)
}

func (m *Repository) ListParticipants(ctx context.Context) ([]models.User, error) {
	if m.ListParticipantsError != nil {
		return nil, m.ListParticipantsError
	}
	return m.FullRepository.ListParticipants(ctx)
}

func (m *Repository) SetUserTeam(ctx context.Context, userID int, teamID *int) error {
	if m.SetUserTeamError != nil {
		return m.SetUserTeamError
	}
	return m.FullRepository.SetUserTeam(ctx, userID, teamID)
}

func (m *Repository) DeleteUser(ctx context.Context, id int) error {
	if m.DeleteUserError != nil {
		return m.DeleteUserError
	}
	return m.FullRepository.DeleteUser(ctx, id)
}

// ===== Team Methods =====

func (m *Repository) CreateTeam(ctx context.Context, name string, leaderID int, checkInCode string) (int64, error) {
	if m.CreateTeamError != nil {
		return 0, m.CreateTeamError
	}
	return m.FullRepository.CreateTeam(ctx, name, leaderID, checkInCode)
}

func (m *Repository) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	if m.GetTeamError != nil {
		return nil, m.GetTeamError
	}
	return m.FullRepository.GetTeam(ctx, id)
}

func (m *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	if m.ListTeamsError != nil {
		return nil, m.ListTeamsError
	}
	return m.FullRepository.ListTeams(ctx)
}

func (m *Repository) ListTeamsByPayment(ctx context.Context, status models.PaymentStatus) ([]models.Team, error) {
	if m.ListTeamsByPaymentError != nil {
		return nil, m.ListTeamsByPaymentError
	}
	return m.FullRepository.ListTeamsByPayment(ctx, status)
}

func (m *Repository) CountMembers(ctx context.Context, teamID int) (int, error) {
	if m.CountMembersError != nil {
		return 0, m.CountMembersError
	}
	return m.FullRepository.CountMembers(ctx, teamID)
}

func (m *Repository) SetPaymentStatus(ctx context.Context, teamID int, status models.PaymentStatus) error {
	if m.SetPaymentStatusError != nil {
		return m.SetPaymentStatusError
	}
	return m.FullRepository.SetPaymentStatus(ctx, teamID, status)
}

func (m *Repository) SetPaymentProof(ctx context.Context, teamID int, transactionID, proofPath string) error {
	if m.SetPaymentProofError != nil {
		return m.SetPaymentProofError
	}
	return m.FullRepository.SetPaymentProof(ctx, teamID, transactionID, proofPath)
}

func (m *Repository) SetRound1Aggregate(ctx context.Context, teamID int, score, avgTime float64) error {
	if m.SetRound1AggregateError != nil {
		return m.SetRound1AggregateError
	}
	return m.FullRepository.SetRound1Aggregate(ctx, teamID, score, avgTime)
}

func (m *Repository) SetRound2Status(ctx context.Context, teamID int, status models.Round2Status) error {
	if m.SetRound2StatusError != nil {
		return m.SetRound2StatusError
	}
	return m.FullRepository.SetRound2Status(ctx, teamID, status)
}

func (m *Repository) SetFinalist(ctx context.Context, teamID int, finalist bool) error {
	if m.SetFinalistError != nil {
		return m.SetFinalistError
	}
	return m.FullRepository.SetFinalist(ctx, teamID, finalist)
}

func (m *Repository) DeleteTeamWithMembers(ctx context.Context, teamID int) error {
	if m.DeleteTeamWithMembersError != nil {
		return m.DeleteTeamWithMembersError
	}
	return m.FullRepository.DeleteTeamWithMembers(ctx, teamID)
}

// ===== Question Methods =====

func (m *Repository) CreateQuestion(ctx context.Context, q models.Question) (int64, error) {
	if m.CreateQuestionError != nil {
		return 0, m.CreateQuestionError
	}
	return m.FullRepository.CreateQuestion(ctx, q)
}

func (m *Repository) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	if m.GetQuestionError != nil {
		return nil, m.GetQuestionError
	}
	return m.FullRepository.GetQuestion(ctx, id)
}

func (m *Repository) ListQuestions(ctx context.Context, round int) ([]models.Question, error) {
	if m.ListQuestionsError != nil {
		return nil, m.ListQuestionsError
	}
	return m.FullRepository.ListQuestions(ctx, round)
}

func (m *Repository) UpdateQuestion(ctx context.Context, q models.Question) error {
	if m.UpdateQuestionError != nil {
		return m.UpdateQuestionError
	}
	return m.FullRepository.UpdateQuestion(ctx, q)
}

func (m *Repository) DeleteQuestion(ctx context.Context, id int) error {
	if m.DeleteQuestionError != nil {
		return m.DeleteQuestionError
	}
	return m.FullRepository.DeleteQuestion(ctx, id)
}

func (m *Repository) CountQuestions(ctx context.Context, round int) (int, error) {
	if m.CountQuestionsError != nil {
		return 0, m.CountQuestionsError
	}
	return m.FullRepository.CountQuestions(ctx, round)
}

func (m *Repository) AnswerKey(ctx context.Context, round int) (map[int]int, error) {
	if m.AnswerKeyError != nil {
		return nil, m.AnswerKeyError
	}
	return m.FullRepository.AnswerKey(ctx, round)
}

// ===== Submission Methods =====

func (m *Repository) CreateQuizAttempt(ctx context.Context, userID, teamID int, startTime time.Time) (int64, error) {
	if m.CreateQuizAttemptError != nil {
		return 0, m.CreateQuizAttemptError
	}
	return m.FullRepository.CreateQuizAttempt(ctx, userID, teamID, startTime)
}

func (m *Repository) GetSubmission(ctx context.Context, id int) (*models.Submission, error) {
	if m.GetSubmissionError != nil {
		return nil, m.GetSubmissionError
	}
	return m.FullRepository.GetSubmission(ctx, id)
}

func (m *Repository) GetQuizSubmission(ctx context.Context, userID int) (*models.Submission, error) {
	if m.GetQuizSubmissionError != nil {
		return nil, m.GetQuizSubmissionError
	}
	return m.FullRepository.GetQuizSubmission(ctx, userID)
}

func (m *Repository) CompleteQuizAttempt(ctx context.Context, id int, answers []models.Answer, score int, endTime time.Time) (bool, error) {
	if m.CompleteQuizAttemptError != nil {
		return false, m.CompleteQuizAttemptError
	}
	return m.FullRepository.CompleteQuizAttempt(ctx, id, answers, score, endTime)
}

func (m *Repository) DeleteQuizSubmission(ctx context.Context, userID int) (int, error) {
	if m.DeleteQuizSubmissionError != nil {
		return 0, m.DeleteQuizSubmissionError
	}
	return m.FullRepository.DeleteQuizSubmission(ctx, userID)
}

func (m *Repository) ListCompletedQuizSubmissions(ctx context.Context, teamID int) ([]models.Submission, error) {
	if m.ListCompletedQuizSubmissionsError != nil {
		return nil, m.ListCompletedQuizSubmissionsError
	}
	return m.FullRepository.ListCompletedQuizSubmissions(ctx, teamID)
}

func (m *Repository) CreateProjectSubmission(ctx context.Context, userID, teamID int, filePath, notes string) (int64, error) {
	if m.CreateProjectSubmissionError != nil {
		return 0, m.CreateProjectSubmissionError
	}
	return m.FullRepository.CreateProjectSubmission(ctx, userID, teamID, filePath, notes)
}

func (m *Repository) GetProjectSubmission(ctx context.Context, teamID int) (*models.Submission, error) {
	if m.GetProjectSubmissionError != nil {
		return nil, m.GetProjectSubmissionError
	}
	return m.FullRepository.GetProjectSubmission(ctx, teamID)
}

func (m *Repository) ListProjectSubmissions(ctx context.Context) ([]models.Submission, error) {
	if m.ListProjectSubmissionsError != nil {
		return nil, m.ListProjectSubmissionsError
	}
	return m.FullRepository.ListProjectSubmissions(ctx)
}

// ===== State Methods =====

func (m *Repository) GetState(ctx context.Context) (*models.HackathonState, error) {
	if m.GetStateError != nil {
		return nil, m.GetStateError
	}
	return m.FullRepository.GetState(ctx)
}

func (m *Repository) SetRoundStatus(ctx context.Context, round int, status models.RoundStatus, deadline *time.Time) error {
	if m.SetRoundStatusError != nil {
		return m.SetRoundStatusError
	}
	return m.FullRepository.SetRoundStatus(ctx, round, status, deadline)
}

func (m *Repository) SetCertificatePath(ctx context.Context, round int, path string) error {
	if m.SetCertificatePathError != nil {
		return m.SetCertificatePathError
	}
	return m.FullRepository.SetCertificatePath(ctx, round, path)
}

// Ensure mock implements the full interface
var _ repository.FullRepository = (*Repository)(nil)
