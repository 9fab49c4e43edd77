package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ledgerly/ledger-api/internal/config"
	"github.com/ledgerly/ledger-api/internal/platform/postgres"
	"github.com/ledgerly/ledger-api/internal/service"
	"github.com/ledgerly/ledger-api/internal/service/auth"
	"github.com/ledgerly/ledger-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore  store.UserStore
	entryStore store.EntryStore

	// Service interfaces
	jwtService      auth.JWTService
	passwordService *auth.BcryptPasswordService
	userService     service.UserService
	entryService    service.EntryService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordService = auth.NewBcryptPasswordService(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewUserStore(db, logger)
	app.entryStore = postgres.NewEntryStore(db, logger)

	app.userService, err = service.NewUserService(
		app.userStore,
		app.passwordService,
		app.passwordService,
		db,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.entryService, err = service.NewEntryService(app.entryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
