package services

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/adishm/hackarena/internal/errors"
	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/models"
	"github.com/adishm/hackarena/internal/repository"
	"github.com/adishm/hackarena/internal/storage"
)

// TeamServiceRepository defines the repository methods needed by TeamService
type TeamServiceRepository interface {
	repository.TeamRepository
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SetUserTeam(ctx context.Context, userID int, teamID *int) error
}

// TeamService handles team formation, membership, payment verification and
// finale check-in codes
type TeamService struct {
	log   logger.Logger
	repo  TeamServiceRepository
	files storage.Store
}

// NewTeamService creates a new TeamService
func NewTeamService(log logger.Logger, repo TeamServiceRepository, files storage.Store) *TeamService {
	return &TeamService{log: log, repo: repo, files: files}
}

// CreateTeam creates a team with the user as leader and sole member
func (s *TeamService) CreateTeam(ctx context.Context, user *models.User, name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Validation("Team name is required")
	}
	if user.TeamID != nil {
		return nil, ErrUserInTeam
	}

	teamID, err := s.repo.CreateTeam(ctx, name, user.ID, uuid.NewString())
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrTeamNameTaken
		}
		return nil, err
	}

	id := int(teamID)
	if err := s.repo.SetUserTeam(ctx, user.ID, &id); err != nil {
		return nil, err
	}

	s.log.Info("Team created", "team_id", id, "name", name, "leader_id", user.ID)
	return s.repo.GetTeam(ctx, id)
}

// GetTeam returns a team by ID
func (s *TeamService) GetTeam(ctx context.Context, teamID int) (*models.Team, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err == repository.ErrNotFound {
		return nil, errors.NotFound("Team not found")
	}
	return team, err
}

// MyTeam returns the team the user belongs to
func (s *TeamService) MyTeam(ctx context.Context, user *models.User) (*models.Team, error) {
	if user.TeamID == nil {
		return nil, ErrNotInTeam
	}
	return s.GetTeam(ctx, *user.TeamID)
}

// AddMember adds a user (looked up by email) to the team. Only the leader
// may add members, the roster is capped at 3, and the target must not
// already belong to a team.
func (s *TeamService) AddMember(ctx context.Context, actor *models.User, teamID int, email string) (*models.Team, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID != actor.ID {
		return nil, ErrNotLeader
	}

	count, err := s.repo.CountMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if count >= 3 {
		return nil, ErrTeamFull
	}

	member, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFound("User not found")
		}
		return nil, err
	}
	if member.TeamID != nil {
		return nil, ErrUserInTeam
	}

	if err := s.repo.SetUserTeam(ctx, member.ID, &teamID); err != nil {
		return nil, err
	}

	s.log.Info("Member added", "team_id", teamID, "user_id", member.ID)
	return s.GetTeam(ctx, teamID)
}

// ListTeams returns all teams (admin view)
func (s *TeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.repo.ListTeams(ctx)
}

// VerifyPayment marks a team's registration payment as completed
func (s *TeamService) VerifyPayment(ctx context.Context, teamID int) (*models.Team, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if err := s.repo.SetPaymentStatus(ctx, teamID, models.PaymentCompleted); err != nil {
		return nil, err
	}

	s.log.Info("Payment verified", "team_id", teamID)
	return s.GetTeam(ctx, teamID)
}

// SubmitPaymentProof stores a payment screenshot and transaction ID for the
// team. Only the leader may submit proof.
func (s *TeamService) SubmitPaymentProof(ctx context.Context, user *models.User, transactionID, filename string, file io.Reader) (*models.Team, error) {
	if user.TeamID == nil {
		return nil, ErrNotInTeam
	}
	if strings.TrimSpace(transactionID) == "" {
		return nil, errors.Validation("Transaction ID is required")
	}

	team, err := s.GetTeam(ctx, *user.TeamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID != user.ID {
		return nil, ErrNotLeader
	}

	path, err := s.files.Save("payments", filename, file)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetPaymentProof(ctx, team.ID, transactionID, path); err != nil {
		return nil, err
	}

	s.log.Info("Payment proof submitted", "team_id", team.ID, "transaction_id", transactionID)
	return s.GetTeam(ctx, team.ID)
}

// DeleteTeam removes a team and all of its members
func (s *TeamService) DeleteTeam(ctx context.Context, teamID int) error {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return err
	}
	if err := s.repo.DeleteTeamWithMembers(ctx, teamID); err != nil {
		return err
	}

	s.log.Info("Team deleted", "team_id", teamID)
	return nil
}

// CheckInQR renders the team's finale check-in code as a PNG QR image
func (s *TeamService) CheckInQR(ctx context.Context, teamID int) ([]byte, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CheckInCode == "" {
		return nil, errors.NotFound("Team has no check-in code")
	}
	return qrcode.Encode(team.CheckInCode, qrcode.Medium, 256)
}
