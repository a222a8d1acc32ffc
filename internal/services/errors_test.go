package services_test

import (
	"strings"
	"testing"

	"github.com/adishm/hackarena/internal/services"
)

func TestServiceError_Error(t *testing.T) {
	err := &services.ServiceError{Message: "test error message"}

	if err.Error() != "test error message" {
		t.Errorf("expected 'test error message', got %q", err.Error())
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"ErrRound1NotActive", services.ErrRound1NotActive, "round 1"},
		{"ErrRound2NotActive", services.ErrRound2NotActive, "round 2"},
		{"ErrPaymentNotVerified", services.ErrPaymentNotVerified, "payment"},
		{"ErrAlreadyAttempted", services.ErrAlreadyAttempted, "already"},
		{"ErrAlreadySubmitted", services.ErrAlreadySubmitted, "already"},
		{"ErrTimeLimitExceeded", services.ErrTimeLimitExceeded, "time limit"},
		{"ErrNotLeader", services.ErrNotLeader, "leader"},
		{"ErrNotInTeam", services.ErrNotInTeam, "team"},
		{"ErrTeamFull", services.ErrTeamFull, "full"},
		{"ErrTeamNameTaken", services.ErrTeamNameTaken, "taken"},
		{"ErrInvalidCredentials", services.ErrInvalidCredentials, "password"},
		{"ErrNotAdvanced", services.ErrNotAdvanced, "cutoff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if !strings.Contains(strings.ToLower(msg), tt.contains) {
				t.Errorf("expected error message to contain %q, got %q", tt.contains, msg)
			}
		})
	}
}
