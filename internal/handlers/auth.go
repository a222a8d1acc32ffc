package handlers

import (
	"net/http"

	"github.com/adishm/hackarena/internal/auth"
	"github.com/adishm/hackarena/internal/services"
)

// handleRegister creates a participant account and returns a token
func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.Account.Register(r.Context(), services.Registration{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		College:  req.College,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.Auth.GenerateToken(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, AuthResponse{Token: token, User: user})
}

// handleLogin verifies credentials and returns a token
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.Account.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.Auth.GenerateToken(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, AuthResponse{Token: token, User: user})
}

// handleMe returns the authenticated account
func (h *Handlers) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	respondOK(w, user)
}

// handleListParticipants returns all participant accounts
func (h *Handlers) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	users, err := h.Account.ListParticipants(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, users)
}

// handleDeleteUser removes an account
func (h *Handlers) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Account.DeleteUser(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}
