package services

import (
	"context"
	"io"

	"github.com/adishm/hackarena/internal/errors"
	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/models"
	"github.com/adishm/hackarena/internal/repository"
	"github.com/adishm/hackarena/internal/storage"
)

// Round2ServiceRepository defines the repository methods needed by Round2Service
type Round2ServiceRepository interface {
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	SetRound2Status(ctx context.Context, teamID int, status models.Round2Status) error
	SetFinalist(ctx context.Context, teamID int, finalist bool) error
	CreateProjectSubmission(ctx context.Context, userID, teamID int, filePath, notes string) (int64, error)
	GetProjectSubmission(ctx context.Context, teamID int) (*models.Submission, error)
	ListProjectSubmissions(ctx context.Context) ([]models.Submission, error)
	GetState(ctx context.Context) (*models.HackathonState, error)
}

// Round2Service handles the project round: eligibility, one-per-team
// uploads, and promotion of teams to the finale
type Round2Service struct {
	log     logger.Logger
	repo    Round2ServiceRepository
	results *ResultsService
	files   storage.Store
}

// NewRound2Service creates a new Round2Service
func NewRound2Service(log logger.Logger, repo Round2ServiceRepository, results *ResultsService, files storage.Store) *Round2Service {
	return &Round2Service{log: log, repo: repo, results: results, files: files}
}

// SubmitProject stores a team's project upload. Only the leader of a team
// inside the round-1 cutoff may submit, while round 2 is active, and once
// per team: the uniqueness index on project submissions is the authority,
// so a concurrent duplicate fails at insert.
func (s *Round2Service) SubmitProject(ctx context.Context, user *models.User, notes, filename string, file io.Reader) (*models.Submission, error) {
	if user.TeamID == nil {
		return nil, ErrNotInTeam
	}

	team, err := s.repo.GetTeam(ctx, *user.TeamID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFound("Team not found")
		}
		return nil, err
	}
	if team.LeaderID != user.ID {
		return nil, ErrNotLeader
	}

	state, err := s.repo.GetState(ctx)
	if err != nil {
		return nil, err
	}
	if state.Round2Status != models.RoundActive {
		return nil, ErrRound2NotActive
	}

	advanced, err := s.results.TeamAdvanced(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	if !advanced {
		return nil, ErrNotAdvanced
	}

	path, err := s.files.Save("projects", filename, file)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateProjectSubmission(ctx, user.ID, team.ID, path, notes)
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	if err := s.repo.SetRound2Status(ctx, team.ID, models.Round2Submitted); err != nil {
		return nil, err
	}

	s.log.Info("Project submitted", "team_id", team.ID, "submission_id", id, "file", path)
	return s.repo.GetProjectSubmission(ctx, team.ID)
}

// TeamSubmission returns the team's project submission
func (s *Round2Service) TeamSubmission(ctx context.Context, user *models.User) (*models.Submission, error) {
	if user.TeamID == nil {
		return nil, ErrNotInTeam
	}
	sub, err := s.repo.GetProjectSubmission(ctx, *user.TeamID)
	if err == repository.ErrNotFound {
		return nil, errors.NotFound("Your team has not submitted yet")
	}
	return sub, err
}

// ListSubmissions returns every project submission (admin view)
func (s *Round2Service) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	return s.repo.ListProjectSubmissions(ctx)
}

// AdvanceToFinale marks a team as a finalist. The flip is idempotent and
// deliberately unguarded: judges may promote a team regardless of its
// submission state.
func (s *Round2Service) AdvanceToFinale(ctx context.Context, teamID int) (*models.Team, error) {
	if _, err := s.repo.GetTeam(ctx, teamID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFound("Team not found")
		}
		return nil, err
	}

	if err := s.repo.SetFinalist(ctx, teamID, true); err != nil {
		return nil, err
	}
	if err := s.repo.SetRound2Status(ctx, teamID, models.Round2Completed); err != nil {
		return nil, err
	}

	s.log.Info("Team advanced to finale", "team_id", teamID)
	return s.repo.GetTeam(ctx, teamID)
}
