package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/generator"
	httpapi "github.com/aussiebroadwan/mutuals/internal/outreach/http"
	"github.com/aussiebroadwan/mutuals/internal/outreach/linkedin"
	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store/drivers/postgres"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store/drivers/sqlite"
	"github.com/aussiebroadwan/mutuals/pkg/cryptox"
	"github.com/aussiebroadwan/mutuals/pkg/jwtx"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags
	BuildVersion = "v0.1.0"
)

// Application encapsulates the outreach service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db        store.Store
	signer    *jwtx.Signer
	verifier  *jwtx.Verifier
	directory linkedin.Directory
	generator generator.Generator // nil when OPENAI_API_KEY is unset

	// Services
	userService         *service.UserService
	sessionService      *service.SessionService
	preferenceService   *service.PreferenceService
	jobService          *service.JobService
	employeeService     *service.EmployeeService
	mutualService       *service.MutualService
	messageService      *service.MessageService
	statsService        *service.StatsService
	discoveryService    *service.DiscoveryService
	toolsService        *service.ToolsService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "outreach-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, verifier, err := InitSessionKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.signer, app.verifier = signer, verifier

	if err := app.initIntegrations(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("outreach service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down outreach service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("outreach service stopped")
	return nil
}

// Handler exposes the router, mostly so the whole stack can be driven
// through httptest.
func (app *Application) Handler() http.Handler {
	return app.router
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DatabaseDriver {
	case "postgres":
		if app.cfg.DatabaseURL == "" {
			return fmt.Errorf("OUTREACH_DATABASE_URL is required for the postgres driver")
		}
		db, err = postgres.NewStore(app.cfg.DatabaseURL)
	case "sqlite", "":
		db, err = sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile))
	default:
		return fmt.Errorf("unknown database driver %q", app.cfg.DatabaseDriver)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initIntegrations picks the LinkedIn directory and the text generator
func (app *Application) initIntegrations() error {
	if app.cfg.LinkedInFixturesFile != "" {
		dir, err := linkedin.LoadFixtures(app.cfg.LinkedInFixturesFile)
		if err != nil {
			return fmt.Errorf("failed to load linkedin fixtures: %w", err)
		}
		app.directory = dir
		app.logger.Info("linkedin directory loaded from file", "path", app.cfg.LinkedInFixturesFile)
	} else {
		app.directory = linkedin.DefaultFixtures()
		app.logger.Info("linkedin directory using embedded fixtures")
	}

	if app.cfg.OpenAIAPIKey == "" {
		app.logger.Warn("OPENAI_API_KEY not set, generation tools disabled")
		return nil
	}

	gen, err := generator.NewOpenAI(app.cfg.OpenAIAPIKey, app.cfg.OpenAIModel)
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}
	app.generator = gen
	app.logger.Info("generation tools enabled")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	guard := service.Guard{Store: app.db}

	app.userService = &service.UserService{Store: app.db}
	app.sessionService = &service.SessionService{
		Store:    app.db,
		Signer:   app.signer,
		Verifier: app.verifier,
		Issuer:   app.cfg.Issuer,
		TTL:      app.cfg.SessionTTL,
	}
	app.preferenceService = &service.PreferenceService{Store: app.db}
	app.jobService = &service.JobService{Store: app.db, Guard: guard}
	app.employeeService = &service.EmployeeService{Store: app.db, Guard: guard}
	app.mutualService = &service.MutualService{Store: app.db, Guard: guard}
	app.messageService = &service.MessageService{Store: app.db, Guard: guard}
	app.statsService = &service.StatsService{Store: app.db}
	app.discoveryService = &service.DiscoveryService{
		Store:     app.db,
		Guard:     guard,
		Directory: app.directory,
	}
	app.toolsService = &service.ToolsService{
		Store:     app.db,
		Generator: app.generator,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.CookieSecure = app.cfg.CookieSecure

	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.PreferenceService = app.preferenceService
	router.JobService = app.jobService
	router.EmployeeService = app.employeeService
	router.MutualService = app.mutualService
	router.MessageService = app.messageService
	router.StatsService = app.statsService
	router.DiscoveryService = app.discoveryService
	router.ToolsService = app.toolsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
