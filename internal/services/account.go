package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/adishm/hackarena/internal/errors"
	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/models"
	"github.com/adishm/hackarena/internal/repository"
)

// AccountServiceRepository defines the repository methods needed by AccountService
type AccountServiceRepository interface {
	repository.UserRepository
}

// AccountService handles registration, login and admin user management
type AccountService struct {
	log  logger.Logger
	repo AccountServiceRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(log logger.Logger, repo AccountServiceRepository) *AccountService {
	return &AccountService{log: log, repo: repo}
}

// Registration carries the fields needed to create an account
type Registration struct {
	Email    string
	Password string
	Name     string
	College  string
	Phone    string
}

// Register creates a participant account with a bcrypt-hashed password
func (s *AccountService) Register(ctx context.Context, reg Registration) (*models.User, error) {
	reg.Email = strings.TrimSpace(strings.ToLower(reg.Email))
	if reg.Email == "" || !strings.Contains(reg.Email, "@") {
		return nil, errors.Validation("A valid email is required")
	}
	if len(reg.Password) < 6 {
		return nil, errors.Validation("Password must be at least 6 characters")
	}
	if strings.TrimSpace(reg.Name) == "" {
		return nil, errors.Validation("Name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateUser(ctx, reg.Email, string(hash), reg.Name, reg.College, reg.Phone, models.RoleParticipant)
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info("User registered", "user_id", id, "email", reg.Email)
	return s.repo.GetUser(ctx, int(id))
}

// CreateAdmin creates an admin account, skipping if the email is taken.
// Used by startup seeding.
func (s *AccountService) CreateAdmin(ctx context.Context, email, password, name string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.CreateUser(ctx, strings.ToLower(email), string(hash), name, "", "", models.RoleAdmin)
	if err == repository.ErrDuplicate {
		return nil
	}
	return err
}

// Login verifies credentials and returns the account
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	id, hash, err := s.repo.GetCredentials(ctx, email)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.repo.GetUser(ctx, id)
}

// Profile returns the account for an ID
func (s *AccountService) Profile(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err == repository.ErrNotFound {
		return nil, errors.NotFound("User not found")
	}
	return user, err
}

// ListParticipants returns all participant accounts (admin view)
func (s *AccountService) ListParticipants(ctx context.Context) ([]models.User, error) {
	return s.repo.ListParticipants(ctx)
}

// DeleteUser removes an account. The membership link lives on the user row,
// so the team roster shrinks with the delete.
func (s *AccountService) DeleteUser(ctx context.Context, userID int) error {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		if err == repository.ErrNotFound {
			return errors.NotFound("User not found")
		}
		return err
	}

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.log.Info("User deleted", "user_id", userID)
	return nil
}
