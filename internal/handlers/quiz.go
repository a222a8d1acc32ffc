package handlers

import (
	"net/http"

	"github.com/adishm/hackarena/internal/auth"
)

// handleStartQuiz opens a round-1 attempt for the authenticated user
func (h *Handlers) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	start, err := h.Quiz.StartAttempt(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, start)
}

// handleSubmitQuiz scores and finalizes an open attempt
func (h *Handlers) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req QuizSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Quiz.SubmitAttempt(r.Context(), user, id, req.Answers)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleMyQuizSubmission returns the user's round-1 submission
func (h *Handlers) handleMyQuizSubmission(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	submission, total, err := h.Quiz.MySubmission(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, QuizSubmissionResponse{Submission: submission, TotalQuestions: total})
}

// handleResetQuiz deletes a user's quiz submission so it can be retaken
func (h *Handlers) handleResetQuiz(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIntParam(r, "userID")
	if err != nil {
		respondError(w, err)
		return
	}

	target, err := h.Account.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Quiz.ResetAttempt(r.Context(), target); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Quiz submission reset")
}

// handleLeaderboard returns the round-1 standings
func (h *Handlers) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.Results.Round1Leaderboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, board)
}
