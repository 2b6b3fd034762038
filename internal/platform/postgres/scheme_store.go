package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/platform/logger"
	"github.com/schemesvc/fas-api/internal/store"
)

// PostgresSchemeStore implements the store.SchemeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSchemeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSchemeStore creates a new PostgreSQL implementation of the
// SchemeStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSchemeStore(db store.DBTX, logger *slog.Logger) *PostgresSchemeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSchemeStore{
		db:     db,
		logger: logger.With(slog.String("component", "scheme_store")),
	}
}

// Ensure PostgresSchemeStore implements store.SchemeStore interface
var _ store.SchemeStore = (*PostgresSchemeStore)(nil)

// Create implements store.SchemeStore.Create
// Rows are inserted scheme first, then criteria, then benefits, matching
// the ownership invariant. Run it against a transaction-scoped store when
// atomicity is required.
func (s *PostgresSchemeStore) Create(ctx context.Context, scheme *domain.Scheme) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := scheme.Validate(); err != nil {
		log.Warn("scheme validation failed during create",
			slog.String("error", err.Error()),
			slog.String("name", scheme.Name))
		return err
	}

	err := s.db.QueryRowContext(
		ctx,
		`INSERT INTO schemes (name) VALUES ($1) RETURNING id`,
		scheme.Name,
	).Scan(&scheme.ID)
	if err != nil {
		log.Error("failed to create scheme",
			slog.String("error", err.Error()),
			slog.String("name", scheme.Name))
		return MapError(err)
	}

	scheme.Criteria.SchemeID = scheme.ID
	scheme.Criteria.SchemeName = scheme.Name

	var schoolLevel sql.NullString
	if scheme.Criteria.SchoolLevel != "" {
		schoolLevel = sql.NullString{String: scheme.Criteria.SchoolLevel, Valid: true}
	}

	err = s.db.QueryRowContext(
		ctx,
		`INSERT INTO criteria (scheme_id, scheme_name, employment_status, children_required, school_level)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		scheme.ID,
		scheme.Name,
		scheme.Criteria.EmploymentStatus,
		scheme.Criteria.ChildrenRequired,
		schoolLevel,
	).Scan(&scheme.Criteria.ID)
	if err != nil {
		log.Error("failed to create scheme criteria",
			slog.String("error", err.Error()),
			slog.Int64("scheme_id", scheme.ID))
		return MapError(err)
	}

	for i := range scheme.Benefits {
		benefit := &scheme.Benefits[i]
		benefit.SchemeID = scheme.ID
		benefit.SchemeName = scheme.Name

		err = s.db.QueryRowContext(
			ctx,
			`INSERT INTO benefits (scheme_id, scheme_name, name, amount)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			benefit.SchemeID,
			benefit.SchemeName,
			benefit.Name,
			benefit.Amount,
		).Scan(&benefit.ID)
		if err != nil {
			log.Error("failed to create scheme benefit",
				slog.String("error", err.Error()),
				slog.Int64("scheme_id", scheme.ID),
				slog.String("benefit", benefit.Name))
			return MapError(err)
		}
	}

	log.Info("scheme created successfully",
		slog.Int64("scheme_id", scheme.ID),
		slog.String("name", scheme.Name),
		slog.Int("benefits", len(scheme.Benefits)))
	return nil
}

// Delete implements store.SchemeStore.Delete
// Benefit and criteria rows are removed before the scheme row.
// Returns store.ErrSchemeNotFound if the scheme does not exist.
func (s *PostgresSchemeStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM benefits WHERE scheme_id = $1`, id); err != nil {
		log.Error("failed to delete scheme benefits",
			slog.String("error", err.Error()),
			slog.Int64("scheme_id", id))
		return MapError(err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM criteria WHERE scheme_id = $1`, id); err != nil {
		log.Error("failed to delete scheme criteria",
			slog.String("error", err.Error()),
			slog.Int64("scheme_id", id))
		return MapError(err)
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM schemes WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete scheme",
			slog.String("error", err.Error()),
			slog.Int64("scheme_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "scheme"); err != nil {
		log.Debug("scheme not found for delete", slog.Int64("scheme_id", id))
		return store.ErrSchemeNotFound
	}

	log.Info("scheme deleted successfully", slog.Int64("scheme_id", id))
	return nil
}

// List implements store.SchemeStore.List
func (s *PostgresSchemeStore) List(ctx context.Context) ([]domain.Scheme, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM schemes ORDER BY id`)
	if err != nil {
		log.Error("failed to list schemes", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	schemes := make([]domain.Scheme, 0)
	for rows.Next() {
		var scheme domain.Scheme
		if err := rows.Scan(&scheme.ID, &scheme.Name); err != nil {
			log.Error("failed to scan scheme row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		schemes = append(schemes, scheme)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return schemes, nil
}

// ListCriteria implements store.SchemeStore.ListCriteria
func (s *PostgresSchemeStore) ListCriteria(ctx context.Context) ([]domain.Criteria, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, scheme_id, scheme_name, employment_status, children_required, school_level
		FROM criteria
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list criteria", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	criteria := make([]domain.Criteria, 0)
	for rows.Next() {
		var c domain.Criteria
		var schoolLevel sql.NullString
		if err := rows.Scan(
			&c.ID,
			&c.SchemeID,
			&c.SchemeName,
			&c.EmploymentStatus,
			&c.ChildrenRequired,
			&schoolLevel,
		); err != nil {
			log.Error("failed to scan criteria row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		c.SchoolLevel = schoolLevel.String
		criteria = append(criteria, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return criteria, nil
}

// ListBenefits implements store.SchemeStore.ListBenefits
func (s *PostgresSchemeStore) ListBenefits(ctx context.Context) ([]domain.Benefit, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, scheme_id, scheme_name, name, amount
		FROM benefits
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list benefits", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	benefits := make([]domain.Benefit, 0)
	for rows.Next() {
		var b domain.Benefit
		if err := rows.Scan(&b.ID, &b.SchemeID, &b.SchemeName, &b.Name, &b.Amount); err != nil {
			log.Error("failed to scan benefit row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		benefits = append(benefits, b)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return benefits, nil
}

// GetSchemeBenefits implements store.SchemeStore.GetSchemeBenefits
// Rows come back in benefit insertion order so grouped summaries preserve
// the order benefits were attached to the scheme.
func (s *PostgresSchemeStore) GetSchemeBenefits(
	ctx context.Context,
	schemeID int64,
) ([]store.SchemeBenefitRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			schemes.name AS scheme_name,
			benefits.name AS benefit_name,
			benefits.amount AS benefit_amount
		FROM schemes
		JOIN criteria ON schemes.id = criteria.scheme_id
		JOIN benefits ON schemes.id = benefits.scheme_id
		WHERE schemes.id = $1
		ORDER BY benefits.id
	`

	rows, err := s.db.QueryContext(ctx, query, schemeID)
	if err != nil {
		log.Error("failed to get scheme benefits",
			slog.String("error", err.Error()),
			slog.Int64("scheme_id", schemeID))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	results := make([]store.SchemeBenefitRow, 0)
	for rows.Next() {
		var row store.SchemeBenefitRow
		if err := rows.Scan(&row.SchemeName, &row.BenefitName, &row.BenefitAmount); err != nil {
			log.Error("failed to scan scheme benefit row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return results, nil
}

// WithTx implements store.SchemeStore.WithTx
func (s *PostgresSchemeStore) WithTx(tx *sql.Tx) store.SchemeStore {
	return &PostgresSchemeStore{
		db:     tx,
		logger: s.logger,
	}
}
