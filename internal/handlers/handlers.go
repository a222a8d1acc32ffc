package handlers

import (
	"github.com/adishm/hackarena/internal/auth"
	"github.com/adishm/hackarena/internal/services"
	"github.com/adishm/hackarena/internal/storage"
	"github.com/adishm/hackarena/internal/websocket"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Account  services.AccountServicer
	Team     services.TeamServicer
	Question services.QuestionServicer
	Quiz     services.QuizServicer
	Results  services.ResultsServicer
	Round2   services.Round2Servicer
	State    services.StateServicer
	Auth     *auth.Auth
	Hub      *websocket.Hub
	Files    storage.Store
	Log      HTTPLogger
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	account services.AccountServicer,
	team services.TeamServicer,
	question services.QuestionServicer,
	quiz services.QuizServicer,
	results services.ResultsServicer,
	round2 services.Round2Servicer,
	state services.StateServicer,
	authn *auth.Auth,
	hub *websocket.Hub,
	files storage.Store,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Account:  account,
		Team:     team,
		Question: question,
		Quiz:     quiz,
		Results:  results,
		Round2:   round2,
		State:    state,
		Auth:     authn,
		Hub:      hub,
		Files:    files,
		Log:      log,
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance with a fixed token secret and no
// websocket hub (API tests do not need one)
func NewForTesting(
	account services.AccountServicer,
	team services.TeamServicer,
	question services.QuestionServicer,
	quiz services.QuizServicer,
	results services.ResultsServicer,
	round2 services.Round2Servicer,
	state services.StateServicer,
	files storage.Store,
) *Handlers {
	return &Handlers{
		Account:  account,
		Team:     team,
		Question: question,
		Quiz:     quiz,
		Results:  results,
		Round2:   round2,
		State:    state,
		Auth:     auth.New("test-secret", account),
		Files:    files,
		Log:      NoopHTTPLogger{},
	}
}
