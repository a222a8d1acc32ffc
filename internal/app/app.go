package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adishm/hackarena/internal/auth"
	"github.com/adishm/hackarena/internal/handlers"
	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/repository"
	"github.com/adishm/hackarena/internal/services"
	"github.com/adishm/hackarena/internal/storage"
	"github.com/adishm/hackarena/internal/websocket"
)

// Config holds application settings
type Config struct {
	DBPath     string
	UploadsDir string
	JWTSecret  string
}

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	account  services.AccountServicer
	repo     *repository.Repository
}

// New creates and initializes a new application instance
func New(log logger.Logger, cfg Config) (*App, error) {
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	files, err := storage.NewLocalStore(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}

	// Initialize services
	accountService := services.NewAccountService(log, repo)
	teamService := services.NewTeamService(log, repo, files)
	questionService := services.NewQuestionService(log, repo)
	quizService := services.NewQuizService(log, repo)
	resultsService := services.NewResultsService(log, repo)
	round2Service := services.NewRound2Service(log, repo, resultsService, files)
	stateService := services.NewStateService(log, repo, files)

	authn := auth.New(cfg.JWTSecret, accountService)

	// Initialize WebSocket hub with DI
	hub := websocket.New(log, stateService)
	hub.Start()
	quizService.SetBroadcaster(hub)
	stateService.SetBroadcaster(hub)

	h := handlers.New(
		accountService,
		teamService,
		questionService,
		quizService,
		resultsService,
		round2Service,
		stateService,
		authn,
		hub,
		files,
		log,
	)

	return &App{
		log:      log,
		handlers: h,
		account:  accountService,
		repo:     repo,
	}, nil
}

// SeedAdmin creates the configured admin account if it does not exist yet
func (a *App) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if err := a.account.CreateAdmin(ctx, email, password, "Admin"); err != nil {
		return err
	}
	a.log.Info("Admin account ready", "email", email)
	return nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	a.log.Info("Server starting", "addr", addr)
	return http.ListenAndServe(addr, a.Router())
}
