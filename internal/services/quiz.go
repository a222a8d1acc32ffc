package services

import (
	"context"
	"time"

	"github.com/adishm/hackarena/internal/errors"
	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/models"
	"github.com/adishm/hackarena/internal/repository"
)

const (
	// QuizDuration is the nominal length of a round-1 attempt
	QuizDuration = 30 * time.Minute
	// SubmitGrace absorbs network and clock skew on top of QuizDuration
	SubmitGrace = 30 * time.Second
)

// QuizServiceRepository defines the repository methods needed by QuizService
type QuizServiceRepository interface {
	repository.SubmissionRepository
	repository.QuestionRepository
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	SetRound1Aggregate(ctx context.Context, teamID int, score, avgTime float64) error
	GetState(ctx context.Context) (*models.HackathonState, error)
}

// QuizService handles the round-1 timed quiz lifecycle: attempt creation,
// scoring, and rolling individual results into the team aggregate
type QuizService struct {
	log         logger.Logger
	repo        QuizServiceRepository
	broadcaster Broadcaster
}

// NewQuizService creates a new QuizService
func NewQuizService(log logger.Logger, repo QuizServiceRepository) *QuizService {
	return &QuizService{log: log, repo: repo}
}

// SetBroadcaster attaches a live-update broadcaster (optional)
func (s *QuizService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// QuizStart is returned when an attempt is opened
type QuizStart struct {
	SubmissionID int               `json:"submission_id"`
	StartTime    time.Time         `json:"start_time"`
	Questions    []models.Question `json:"questions"`
	Deadline     time.Time         `json:"deadline"`
}

// QuizResult is returned after a submit is scored
type QuizResult struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
}

// StartAttempt opens a round-1 attempt for the user and returns the question
// set with correct options stripped. The uniqueness index on submissions is
// the authority for the one-attempt rule, so a concurrent duplicate start
// fails at insert rather than at a racy existence check.
func (s *QuizService) StartAttempt(ctx context.Context, user *models.User) (*QuizStart, error) {
	if user.TeamID == nil {
		return nil, ErrNotInTeam
	}

	state, err := s.repo.GetState(ctx)
	if err != nil {
		return nil, err
	}
	if state.Round1Status != models.RoundActive {
		return nil, ErrRound1NotActive
	}

	team, err := s.repo.GetTeam(ctx, *user.TeamID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFound("Team not found")
		}
		return nil, err
	}
	if team.PaymentStatus != models.PaymentCompleted {
		return nil, ErrPaymentNotVerified
	}

	startTime := time.Now()
	submissionID, err := s.repo.CreateQuizAttempt(ctx, user.ID, team.ID, startTime)
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrAlreadyAttempted
		}
		return nil, err
	}

	questions, err := s.repo.ListQuestions(ctx, 1)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].CorrectOption = nil
	}

	s.log.Info("Quiz attempt started", "user_id", user.ID, "team_id", team.ID, "submission_id", submissionID)

	return &QuizStart{
		SubmissionID: int(submissionID),
		StartTime:    startTime,
		Questions:    questions,
		Deadline:     startTime.Add(QuizDuration),
	}, nil
}

// SubmitAttempt scores and finalizes an open attempt. The write is
// once-only: a second submit against the same submission is rejected,
// never re-scored.
func (s *QuizService) SubmitAttempt(ctx context.Context, user *models.User, submissionID int, answers []models.Answer) (*QuizResult, error) {
	submission, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFound("Submission not found")
		}
		return nil, err
	}
	if submission.Round != 1 {
		return nil, errors.NotFound("Submission not found")
	}
	if submission.UserID != user.ID {
		return nil, ErrNotAuthorized
	}

	now := time.Now()
	if submission.StartTime == nil || now.After(submission.StartTime.Add(QuizDuration+SubmitGrace)) {
		return nil, ErrTimeLimitExceeded
	}

	key, err := s.repo.AnswerKey(ctx, 1)
	if err != nil {
		return nil, err
	}

	score := scoreAnswers(answers, key)

	completed, err := s.repo.CompleteQuizAttempt(ctx, submissionID, answers, score, now)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, ErrAlreadyAttempted
	}

	total, err := s.repo.CountQuestions(ctx, 1)
	if err != nil {
		return nil, err
	}

	s.log.Info("Quiz submitted", "user_id", user.ID, "submission_id", submissionID, "score", score, "total", total)

	// Synchronous recompute: the score write above is already durable, so a
	// recompute failure here is reported but the next submit or reset for
	// this team will reconcile the aggregate.
	if err := s.RecomputeTeamAggregate(ctx, submission.TeamID); err != nil {
		return nil, err
	}

	return &QuizResult{Score: score, TotalQuestions: total}, nil
}

// scoreAnswers counts answers matching the answer key. Unknown question IDs
// are ignored: they neither score nor fail the submission.
func scoreAnswers(answers []models.Answer, key map[int]int) int {
	score := 0
	for _, ans := range answers {
		if correct, ok := key[ans.QuestionID]; ok && correct == ans.SelectedOption {
			score++
		}
	}
	return score
}

// MySubmission returns the user's round-1 submission and the question count
func (s *QuizService) MySubmission(ctx context.Context, user *models.User) (*models.Submission, int, error) {
	submission, err := s.repo.GetQuizSubmission(ctx, user.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, 0, errors.NotFound("You have not taken the quiz yet")
		}
		return nil, 0, err
	}

	total, err := s.repo.CountQuestions(ctx, 1)
	if err != nil {
		return nil, 0, err
	}
	return submission, total, nil
}

// ResetAttempt deletes the user's round-1 submission so the quiz can be
// retaken, then recomputes the team aggregate
func (s *QuizService) ResetAttempt(ctx context.Context, user *models.User) error {
	teamID, err := s.repo.DeleteQuizSubmission(ctx, user.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return errors.NotFound("No submission found to delete")
		}
		return err
	}

	s.log.Info("Quiz attempt reset", "user_id", user.ID, "team_id", teamID)
	return s.RecomputeTeamAggregate(ctx, teamID)
}

// RecomputeTeamAggregate derives the team-level score and time from every
// completed round-1 submission by the team's members. The computation is
// pure given the submission set: mean score, and mean elapsed seconds.
// An empty set leaves the previously stored aggregate untouched.
func (s *QuizService) RecomputeTeamAggregate(ctx context.Context, teamID int) error {
	submissions, err := s.repo.ListCompletedQuizSubmissions(ctx, teamID)
	if err != nil {
		return err
	}
	if len(submissions) == 0 {
		return nil
	}

	var totalScore, totalSeconds float64
	for _, sub := range submissions {
		totalScore += float64(sub.Score)
		totalSeconds += sub.EndTime.Sub(*sub.StartTime).Seconds()
	}
	avgScore := totalScore / float64(len(submissions))
	avgTime := totalSeconds / float64(len(submissions))

	if err := s.repo.SetRound1Aggregate(ctx, teamID, avgScore, avgTime); err != nil {
		return err
	}

	s.log.Debug("Team aggregate recomputed", "team_id", teamID, "avg_score", avgScore, "avg_time", avgTime)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMessage("leaderboard_updated", map[string]interface{}{
			"team_id":   teamID,
			"avg_score": avgScore,
			"avg_time":  avgTime,
		})
	}
	return nil
}
