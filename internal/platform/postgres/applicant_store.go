package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/platform/logger"
	"github.com/schemesvc/fas-api/internal/store"
)

// PostgresApplicantStore implements the store.ApplicantStore interface
// using a PostgreSQL database as the storage backend.
type PostgresApplicantStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresApplicantStore creates a new PostgreSQL implementation of the
// ApplicantStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresApplicantStore(db store.DBTX, logger *slog.Logger) *PostgresApplicantStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresApplicantStore{
		db:     db,
		logger: logger.With(slog.String("component", "applicant_store")),
	}
}

// Ensure PostgresApplicantStore implements store.ApplicantStore interface
var _ store.ApplicantStore = (*PostgresApplicantStore)(nil)

// Create implements store.ApplicantStore.Create
// It validates the applicant and inserts the row, assigning the generated ID.
func (s *PostgresApplicantStore) Create(ctx context.Context, applicant *domain.Applicant) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := applicant.Validate(); err != nil {
		log.Warn("applicant validation failed during create",
			slog.String("error", err.Error()),
			slog.String("name", applicant.Name))
		return err
	}

	if applicant.CreatedAt.IsZero() {
		applicant.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO applicants (name, marital_status, employment_status, sex, date_of_birth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		applicant.Name,
		applicant.MaritalStatus,
		applicant.EmploymentStatus,
		applicant.Sex,
		applicant.DateOfBirth,
		applicant.CreatedAt,
	).Scan(&applicant.ID)
	if err != nil {
		log.Error("failed to create applicant",
			slog.String("error", err.Error()),
			slog.String("name", applicant.Name))
		return MapError(err)
	}

	log.Info("applicant created successfully",
		slog.Int64("applicant_id", applicant.ID),
		slog.String("name", applicant.Name))
	return nil
}

// CreateHouseholdMember implements store.ApplicantStore.CreateHouseholdMember
// Returns store.ErrInvalidEntity if the referenced applicant does not exist.
func (s *PostgresApplicantStore) CreateHouseholdMember(
	ctx context.Context,
	member *domain.HouseholdMember,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := member.Validate(); err != nil {
		log.Warn("household member validation failed during create",
			slog.String("error", err.Error()),
			slog.String("name", member.Name))
		return err
	}

	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO household_members (applicant_id, name, employment_status, sex, date_of_birth, relation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		member.ApplicantID,
		member.Name,
		member.EmploymentStatus,
		member.Sex,
		member.DateOfBirth,
		member.Relation,
		member.CreatedAt,
	).Scan(&member.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during household member creation",
				slog.Int64("applicant_id", member.ApplicantID),
				slog.String("name", member.Name))
			return fmt.Errorf("%w: applicant with ID %d not found",
				store.ErrInvalidEntity, member.ApplicantID)
		}
		log.Error("failed to create household member",
			slog.String("error", err.Error()),
			slog.Int64("applicant_id", member.ApplicantID))
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ApplicantStore.GetByID
// Returns store.ErrApplicantNotFound if the applicant does not exist.
func (s *PostgresApplicantStore) GetByID(ctx context.Context, id int64) (*domain.Applicant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, marital_status, employment_status, sex, date_of_birth, created_at
		FROM applicants
		WHERE id = $1
	`

	var applicant domain.Applicant
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&applicant.ID,
		&applicant.Name,
		&applicant.MaritalStatus,
		&applicant.EmploymentStatus,
		&applicant.Sex,
		&applicant.DateOfBirth,
		&applicant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("applicant not found", slog.Int64("applicant_id", id))
			return nil, store.ErrApplicantNotFound
		}
		log.Error("failed to get applicant by ID",
			slog.String("error", err.Error()),
			slog.Int64("applicant_id", id))
		return nil, MapError(err)
	}

	return &applicant, nil
}

// FindByNameAndDOB implements store.ApplicantStore.FindByNameAndDOB
// Returns store.ErrApplicantNotFound if there is no exact match.
func (s *PostgresApplicantStore) FindByNameAndDOB(
	ctx context.Context,
	name string,
	dob time.Time,
) (*domain.Applicant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, marital_status, employment_status, sex, date_of_birth, created_at
		FROM applicants
		WHERE name = $1 AND date_of_birth = $2
	`

	var applicant domain.Applicant
	err := s.db.QueryRowContext(ctx, query, name, dob).Scan(
		&applicant.ID,
		&applicant.Name,
		&applicant.MaritalStatus,
		&applicant.EmploymentStatus,
		&applicant.Sex,
		&applicant.DateOfBirth,
		&applicant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no applicant matched name and date of birth",
				slog.String("name", name))
			return nil, store.ErrApplicantNotFound
		}
		log.Error("failed to find applicant by name and date of birth",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, MapError(err)
	}

	return &applicant, nil
}

// GetHousehold implements store.ApplicantStore.GetHousehold
// Members are returned in insertion order. An empty household yields an
// empty slice.
func (s *PostgresApplicantStore) GetHousehold(
	ctx context.Context,
	applicantID int64,
) ([]domain.HouseholdMember, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, applicant_id, name, employment_status, sex, date_of_birth, relation, created_at
		FROM household_members
		WHERE applicant_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, applicantID)
	if err != nil {
		log.Error("failed to get household",
			slog.String("error", err.Error()),
			slog.Int64("applicant_id", applicantID))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	members := make([]domain.HouseholdMember, 0)
	for rows.Next() {
		var member domain.HouseholdMember
		if err := rows.Scan(
			&member.ID,
			&member.ApplicantID,
			&member.Name,
			&member.EmploymentStatus,
			&member.Sex,
			&member.DateOfBirth,
			&member.Relation,
			&member.CreatedAt,
		); err != nil {
			log.Error("failed to scan household member row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return members, nil
}

// List implements store.ApplicantStore.List
func (s *PostgresApplicantStore) List(ctx context.Context) ([]domain.Applicant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, marital_status, employment_status, sex, date_of_birth, created_at
		FROM applicants
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list applicants", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	applicants := make([]domain.Applicant, 0)
	for rows.Next() {
		var applicant domain.Applicant
		if err := rows.Scan(
			&applicant.ID,
			&applicant.Name,
			&applicant.MaritalStatus,
			&applicant.EmploymentStatus,
			&applicant.Sex,
			&applicant.DateOfBirth,
			&applicant.CreatedAt,
		); err != nil {
			log.Error("failed to scan applicant row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		applicants = append(applicants, applicant)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return applicants, nil
}

// WithTx implements store.ApplicantStore.WithTx
func (s *PostgresApplicantStore) WithTx(tx *sql.Tx) store.ApplicantStore {
	return &PostgresApplicantStore{
		db:     tx,
		logger: s.logger,
	}
}
