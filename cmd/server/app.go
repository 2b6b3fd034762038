package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/schemesvc/fas-api/internal/config"
	"github.com/schemesvc/fas-api/internal/platform/postgres"
	"github.com/schemesvc/fas-api/internal/service"
	"github.com/schemesvc/fas-api/internal/service/auth"
	"github.com/schemesvc/fas-api/internal/service/eligibility"
	"github.com/schemesvc/fas-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	adminStore       store.AdminStore
	applicantStore   store.ApplicantStore
	schemeStore      store.SchemeStore
	applicationStore store.ApplicationStore

	// Services
	jwtService         auth.JWTService
	passwordVerifier   auth.PasswordVerifier
	eligibilityService *eligibility.Service
	applicantService   service.ApplicantService
	schemeService      service.SchemeService
	applicationService service.ApplicationService
}

// newApplication wires the store and service dependency graph on top of an
// established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	adminStore := postgres.NewPostgresAdminStore(db, cfg.Auth.BcryptCost, logger)
	applicantStore := postgres.NewPostgresApplicantStore(db, logger)
	schemeStore := postgres.NewPostgresSchemeStore(db, logger)
	applicationStore := postgres.NewPostgresApplicationStore(db, logger)

	eligibilityService := eligibility.NewService(applicantStore, schemeStore, logger)

	return &application{
		config:             cfg,
		logger:             logger,
		db:                 db,
		adminStore:         adminStore,
		applicantStore:     applicantStore,
		schemeStore:        schemeStore,
		applicationStore:   applicationStore,
		jwtService:         jwtService,
		passwordVerifier:   auth.NewBcryptVerifier(),
		eligibilityService: eligibilityService,
		applicantService:   service.NewApplicantService(applicantStore, db, logger),
		schemeService:      service.NewSchemeService(schemeStore, db, logger),
		applicationService: service.NewApplicationService(applicantStore, applicationStore, eligibilityService, logger),
	}, nil
}

// cleanup releases resources held by the application. The database
// connection is closed by main's defer.
func (app *application) cleanup() {
	app.logger.Debug("application cleanup complete")
}
