package services

import (
	"context"
	"strings"
	"time"

	"github.com/adishm/hackarena/internal/errors"
	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/models"
	"github.com/adishm/hackarena/internal/repository"
)

// QuestionServiceRepository defines the repository methods needed by QuestionService
type QuestionServiceRepository interface {
	repository.QuestionRepository
}

// QuestionService manages the question bank for both rounds
type QuestionService struct {
	log  logger.Logger
	repo QuestionServiceRepository
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(log logger.Logger, repo QuestionServiceRepository) *QuestionService {
	return &QuestionService{log: log, repo: repo}
}

// QuestionInput carries the fields for creating or updating a question
type QuestionInput struct {
	Round         int
	Title         string
	Options       []string
	CorrectOption *int
	Description   string
	Deadline      *time.Time
}

// validate enforces the per-round shape: round-1 questions need exactly 4
// options and a correct index, round-2 problems need a description
func (in QuestionInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.Validation("Title is required")
	}
	switch in.Round {
	case 1:
		if len(in.Options) != 4 {
			return errors.Validation("MCQ must have exactly 4 options")
		}
		if in.CorrectOption == nil || *in.CorrectOption < 0 || *in.CorrectOption > 3 {
			return errors.Validation("MCQ must have a correctOption between 0 and 3")
		}
	case 2:
		if strings.TrimSpace(in.Description) == "" {
			return errors.Validation("Round 2 problem must have a description")
		}
	default:
		return errors.Validation("Round must be 1 or 2")
	}
	return nil
}

// Create adds a question to the bank
func (s *QuestionService) Create(ctx context.Context, in QuestionInput) (*models.Question, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	q := models.Question{
		Round:         in.Round,
		Title:         in.Title,
		Options:       in.Options,
		CorrectOption: in.CorrectOption,
		Description:   in.Description,
		Deadline:      in.Deadline,
	}
	if in.Round == 2 {
		q.Options = nil
		q.CorrectOption = nil
	}

	id, err := s.repo.CreateQuestion(ctx, q)
	if err != nil {
		return nil, err
	}

	s.log.Info("Question created", "question_id", id, "round", in.Round)
	return s.repo.GetQuestion(ctx, int(id))
}

// List returns the questions for a round with correct options stripped.
// This is the participant view; answers are never revealed before grading.
func (s *QuestionService) List(ctx context.Context, round int) ([]models.Question, error) {
	questions, err := s.repo.ListQuestions(ctx, round)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].CorrectOption = nil
	}
	return questions, nil
}

// ListWithAnswers returns the questions for a round including correct
// options (admin view)
func (s *QuestionService) ListWithAnswers(ctx context.Context, round int) ([]models.Question, error) {
	return s.repo.ListQuestions(ctx, round)
}

// Update replaces a question's editable fields, keeping the round fixed
func (s *QuestionService) Update(ctx context.Context, id int, in QuestionInput) (*models.Question, error) {
	existing, err := s.repo.GetQuestion(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFound("Question not found")
		}
		return nil, err
	}

	in.Round = existing.Round
	if err := in.validate(); err != nil {
		return nil, err
	}

	updated := models.Question{
		ID:            id,
		Round:         existing.Round,
		Title:         in.Title,
		Options:       in.Options,
		CorrectOption: in.CorrectOption,
		Description:   in.Description,
		Deadline:      in.Deadline,
	}
	if existing.Round == 2 {
		updated.Options = nil
		updated.CorrectOption = nil
	}

	if err := s.repo.UpdateQuestion(ctx, updated); err != nil {
		return nil, err
	}
	return s.repo.GetQuestion(ctx, id)
}

// Delete removes a question from the bank
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetQuestion(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return errors.NotFound("Question not found")
		}
		return err
	}
	return s.repo.DeleteQuestion(ctx, id)
}
