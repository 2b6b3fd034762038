package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/platform/logger"
	"github.com/schemesvc/fas-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// PostgresAdminStore implements the store.AdminStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAdminStore struct {
	db         store.DBTX
	logger     *slog.Logger
	bcryptCost int
}

// NewPostgresAdminStore creates a new PostgreSQL implementation of the
// AdminStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
// If bcryptCost is outside bcrypt's valid range, bcrypt.DefaultCost is used.
func NewPostgresAdminStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *PostgresAdminStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &PostgresAdminStore{
		db:         db,
		logger:     logger.With(slog.String("component", "admin_store")),
		bcryptCost: bcryptCost,
	}
}

// Ensure PostgresAdminStore implements store.AdminStore interface
var _ store.AdminStore = (*PostgresAdminStore)(nil)

// Create implements store.AdminStore.Create
// It validates the admin, hashes the plaintext password and inserts the row.
// Returns store.ErrUsernameExists on a username unique violation.
func (s *PostgresAdminStore) Create(ctx context.Context, admin *domain.Admin) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := admin.Validate(); err != nil {
		log.Warn("admin validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", admin.Username))
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), s.bcryptCost)
	if err != nil {
		log.Error("failed to hash admin password",
			slog.String("error", err.Error()),
			slog.String("admin_id", admin.ID.String()))
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin.HashedPassword = string(hashed)
	admin.Password = ""

	query := `
		INSERT INTO administrators (id, username, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		admin.ID,
		admin.Username,
		admin.HashedPassword,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate username during admin creation",
				slog.String("username", admin.Username))
			return store.ErrUsernameExists
		}
		log.Error("failed to create admin",
			slog.String("error", err.Error()),
			slog.String("admin_id", admin.ID.String()))
		return MapError(err)
	}

	log.Info("admin created successfully",
		slog.String("admin_id", admin.ID.String()),
		slog.String("username", admin.Username))
	return nil
}

// GetByID implements store.AdminStore.GetByID
// Returns store.ErrAdminNotFound if the administrator does not exist.
func (s *PostgresAdminStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, hashed_password, created_at, updated_at
		FROM administrators
		WHERE id = $1
	`

	var admin domain.Admin
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.HashedPassword,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("admin not found", slog.String("admin_id", id.String()))
			return nil, store.ErrAdminNotFound
		}
		log.Error("failed to get admin by ID",
			slog.String("error", err.Error()),
			slog.String("admin_id", id.String()))
		return nil, MapError(err)
	}

	return &admin, nil
}

// GetByUsername implements store.AdminStore.GetByUsername
// Returns store.ErrAdminNotFound if the administrator does not exist.
func (s *PostgresAdminStore) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, hashed_password, created_at, updated_at
		FROM administrators
		WHERE username = $1
	`

	var admin domain.Admin
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.HashedPassword,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("admin not found by username", slog.String("username", username))
			return nil, store.ErrAdminNotFound
		}
		log.Error("failed to get admin by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}

	return &admin, nil
}

// List implements store.AdminStore.List
func (s *PostgresAdminStore) List(ctx context.Context) ([]domain.Admin, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, hashed_password, created_at, updated_at
		FROM administrators
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list admins", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	admins := make([]domain.Admin, 0)
	for rows.Next() {
		var admin domain.Admin
		if err := rows.Scan(
			&admin.ID,
			&admin.Username,
			&admin.HashedPassword,
			&admin.CreatedAt,
			&admin.UpdatedAt,
		); err != nil {
			log.Error("failed to scan admin row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return admins, nil
}

// Delete implements store.AdminStore.Delete
// Returns store.ErrAdminNotFound if the administrator does not exist.
func (s *PostgresAdminStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM administrators WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete admin",
			slog.String("error", err.Error()),
			slog.String("admin_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "administrator"); err != nil {
		log.Debug("admin not found for delete", slog.String("admin_id", id.String()))
		return store.ErrAdminNotFound
	}

	log.Info("admin deleted successfully", slog.String("admin_id", id.String()))
	return nil
}

// WithTx implements store.AdminStore.WithTx
func (s *PostgresAdminStore) WithTx(tx *sql.Tx) store.AdminStore {
	return &PostgresAdminStore{
		db:         tx,
		logger:     s.logger,
		bcryptCost: s.bcryptCost,
	}
}
