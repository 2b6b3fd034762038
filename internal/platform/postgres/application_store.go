package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/platform/logger"
	"github.com/schemesvc/fas-api/internal/store"
)

// PostgresApplicationStore implements the store.ApplicationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresApplicationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresApplicationStore creates a new PostgreSQL implementation of the
// ApplicationStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresApplicationStore(db store.DBTX, logger *slog.Logger) *PostgresApplicationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresApplicationStore{
		db:     db,
		logger: logger.With(slog.String("component", "application_store")),
	}
}

// Ensure PostgresApplicationStore implements store.ApplicationStore interface
var _ store.ApplicationStore = (*PostgresApplicationStore)(nil)

// Create implements store.ApplicationStore.Create
func (s *PostgresApplicationStore) Create(ctx context.Context, application *domain.Application) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if application.CreatedAt.IsZero() {
		application.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO applications (applicant_id, scheme_applied, name, date_of_birth, eligible, application_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		application.ApplicantID,
		application.SchemeApplied,
		application.Name,
		application.DateOfBirth,
		application.Eligible,
		application.Status,
		application.CreatedAt,
	).Scan(&application.ID)
	if err != nil {
		log.Error("failed to create application",
			slog.String("error", err.Error()),
			slog.Int64("applicant_id", application.ApplicantID),
			slog.String("scheme_applied", application.SchemeApplied))
		return MapError(err)
	}

	log.Info("application created successfully",
		slog.Int64("application_id", application.ID),
		slog.Int64("applicant_id", application.ApplicantID),
		slog.String("status", application.Status))
	return nil
}

// List implements store.ApplicationStore.List
func (s *PostgresApplicationStore) List(ctx context.Context) ([]domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, applicant_id, scheme_applied, name, date_of_birth, eligible, application_status, created_at
		FROM applications
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list applications", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	applications := make([]domain.Application, 0)
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID,
			&app.ApplicantID,
			&app.SchemeApplied,
			&app.Name,
			&app.DateOfBirth,
			&app.Eligible,
			&app.Status,
			&app.CreatedAt,
		); err != nil {
			log.Error("failed to scan application row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		applications = append(applications, app)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return applications, nil
}

// WithTx implements store.ApplicationStore.WithTx
func (s *PostgresApplicationStore) WithTx(tx *sql.Tx) store.ApplicationStore {
	return &PostgresApplicationStore{
		db:     tx,
		logger: s.logger,
	}
}
