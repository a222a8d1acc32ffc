package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	// Auth (public)
	r.Post("/api/auth/register", h.handleRegister)
	r.Post("/api/auth/login", h.handleLogin)

	// Hackathon state (public read)
	r.Get("/api/state", h.handleGetState)

	// Authenticated participant API
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireUser)

		r.Get("/api/auth/me", h.handleMe)

		// Teams
		r.Post("/api/teams", h.handleCreateTeam)
		r.Get("/api/teams/my-team", h.handleMyTeam)
		r.Post("/api/teams/{id}/members", h.handleAddMember)
		r.Get("/api/teams/{id}/checkin-qr", h.handleCheckInQR)
		r.Get("/api/teams/results/1", h.handleLeaderboard)
		r.Get("/api/teams/{id}", h.handleGetTeam)

		// Payments
		r.Post("/api/payments/proof", h.handleSubmitPaymentProof)

		// Questions (participant view)
		r.Get("/api/questions/{round}", h.handleListQuestions)

		// Quiz (round 1)
		r.Post("/api/quiz/start/1", h.handleStartQuiz)
		r.Post("/api/quiz/submit/{id}", h.handleSubmitQuiz)
		r.Get("/api/quiz/my-submission", h.handleMyQuizSubmission)

		// Projects (round 2)
		r.Post("/api/submissions/project", h.handleSubmitProject)
		r.Get("/api/submissions/my-team", h.handleTeamProjectSubmission)

		// Admin API
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.RequireAdmin)

			// Participants
			r.Get("/api/admin/participants", h.handleListParticipants)
			r.Delete("/api/admin/participants/{id}", h.handleDeleteUser)

			// Teams
			r.Get("/api/admin/teams", h.handleListTeams)
			r.Delete("/api/admin/teams/{id}", h.handleDeleteTeam)
			r.Post("/api/admin/teams/{id}/verify-payment", h.handleVerifyPayment)
			r.Post("/api/admin/teams/{id}/advance", h.handleAdvanceToFinale)

			// Questions
			r.Get("/api/admin/questions/{round}", h.handleListQuestionsAdmin)
			r.Post("/api/admin/questions", h.handleCreateQuestion)
			r.Put("/api/admin/questions/{id}", h.handleUpdateQuestion)
			r.Delete("/api/admin/questions/{id}", h.handleDeleteQuestion)

			// Quiz management
			r.Delete("/api/admin/quiz/submissions/{userID}", h.handleResetQuiz)

			// Project submissions
			r.Get("/api/admin/submissions", h.handleListProjectSubmissions)
			r.Get("/api/admin/download/{category}/{file}", h.handleDownload)

			// State
			r.Put("/api/admin/state/round/{round}", h.handleSetRoundStatus)
			r.Post("/api/admin/state/certificate/{round}", h.handleUploadCertificate)
		})
	})

	return r
}
