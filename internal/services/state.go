package services

import (
	"context"
	"io"
	"time"

	"github.com/adishm/hackarena/internal/errors"
	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/models"
	"github.com/adishm/hackarena/internal/repository"
	"github.com/adishm/hackarena/internal/storage"
)

// Default deadlines applied when a round is activated without an explicit
// one.
const (
	defaultRound1Window = 7 * 24 * time.Hour
	defaultRound2Window = 14 * 24 * time.Hour
)

// StateServiceRepository defines the repository methods needed by StateService
type StateServiceRepository interface {
	repository.StateRepository
}

// StateService owns the hackathon phase singleton. Every transition goes
// through SetRoundStatus so there is exactly one place where the phase
// flags change.
type StateService struct {
	log         logger.Logger
	repo        StateServiceRepository
	files       storage.Store
	broadcaster Broadcaster
}

// NewStateService creates a new StateService
func NewStateService(log logger.Logger, repo StateServiceRepository, files storage.Store) *StateService {
	return &StateService{log: log, repo: repo, files: files}
}

// SetBroadcaster attaches a live-update broadcaster (optional)
func (s *StateService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// State returns the current phase flags, creating the singleton on first
// access
func (s *StateService) State(ctx context.Context) (*models.HackathonState, error) {
	return s.repo.GetState(ctx)
}

// SetRoundStatus transitions a round to the given status. Transitions are
// unconditional: an admin may move a round to any status from any status.
// Activating a round with no explicit deadline applies the default window.
func (s *StateService) SetRoundStatus(ctx context.Context, round int, status models.RoundStatus, deadline *time.Time) (*models.HackathonState, error) {
	if round != 1 && round != 2 {
		return nil, errors.Validation("Round must be 1 or 2")
	}
	if !status.Valid() {
		return nil, errors.Validation("Status must be Pending, Active or Completed")
	}

	if status == models.RoundActive && deadline == nil {
		window := defaultRound1Window
		if round == 2 {
			window = defaultRound2Window
		}
		d := time.Now().Add(window)
		deadline = &d
	}

	if err := s.repo.SetRoundStatus(ctx, round, status, deadline); err != nil {
		return nil, err
	}

	s.log.Info("Round status changed", "round", round, "status", status)

	state, err := s.repo.GetState(ctx)
	if err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMessage("round_status_changed", map[string]interface{}{
			"round":    round,
			"status":   status,
			"deadline": deadline,
		})
	}
	return state, nil
}

// UploadCertificate stores a participation certificate template for a round
func (s *StateService) UploadCertificate(ctx context.Context, round int, filename string, file io.Reader) (*models.HackathonState, error) {
	if round != 1 && round != 2 {
		return nil, errors.Validation("Round must be 1 or 2")
	}

	path, err := s.files.Save("certificates", filename, file)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetCertificatePath(ctx, round, path); err != nil {
		return nil, err
	}

	s.log.Info("Certificate uploaded", "round", round, "file", path)
	return s.repo.GetState(ctx)
}
