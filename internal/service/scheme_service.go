package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/store"
)

// SchemeService provides scheme catalog operations. Multi-row writes
// (scheme + criteria + benefits) are atomic: a failure anywhere rolls the
// whole insert back.
type SchemeService interface {
	// CreateScheme validates and persists a scheme with its criteria and
	// benefits in a single transaction.
	CreateScheme(ctx context.Context, scheme *domain.Scheme) error

	// DeleteScheme removes a scheme and its criteria and benefit rows in a
	// single transaction. Returns store.ErrSchemeNotFound if the scheme
	// does not exist.
	DeleteScheme(ctx context.Context, id int64) error

	// ListSchemes returns all schemes in the catalog.
	ListSchemes(ctx context.Context) ([]domain.Scheme, error)

	// ListCriteria returns every criteria row in the catalog.
	ListCriteria(ctx context.Context) ([]domain.Criteria, error)

	// ListBenefits returns every benefit row in the catalog.
	ListBenefits(ctx context.Context) ([]domain.Benefit, error)
}

// SchemeServiceImpl implements the SchemeService interface
type SchemeServiceImpl struct {
	schemes store.SchemeStore
	db      *sql.DB
	logger  *slog.Logger
}

// NewSchemeService creates a new SchemeService
func NewSchemeService(schemes store.SchemeStore, db *sql.DB, logger *slog.Logger) SchemeService {
	return &SchemeServiceImpl{
		schemes: schemes,
		db:      db,
		logger:  logger.With("component", "scheme_service"),
	}
}

// CreateScheme validates and persists a scheme atomically.
func (s *SchemeServiceImpl) CreateScheme(ctx context.Context, scheme *domain.Scheme) error {
	if err := scheme.Validate(); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.schemes.WithTx(tx).Create(ctx, scheme); err != nil {
			return fmt.Errorf("failed to create scheme: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to create scheme",
			"error", err,
			"name", scheme.Name)
		return err
	}

	s.logger.Info("scheme created",
		"scheme_id", scheme.ID,
		"name", scheme.Name)
	return nil
}

// DeleteScheme removes a scheme and its dependent rows atomically.
func (s *SchemeServiceImpl) DeleteScheme(ctx context.Context, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.schemes.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("failed to delete scheme",
			"error", err,
			"scheme_id", id)
		return err
	}

	s.logger.Info("scheme deleted", "scheme_id", id)
	return nil
}

// ListSchemes returns all schemes in the catalog.
func (s *SchemeServiceImpl) ListSchemes(ctx context.Context) ([]domain.Scheme, error) {
	return s.schemes.List(ctx)
}

// ListCriteria returns every criteria row in the catalog.
func (s *SchemeServiceImpl) ListCriteria(ctx context.Context) ([]domain.Criteria, error) {
	return s.schemes.ListCriteria(ctx)
}

// ListBenefits returns every benefit row in the catalog.
func (s *SchemeServiceImpl) ListBenefits(ctx context.Context) ([]domain.Benefit, error) {
	return s.schemes.ListBenefits(ctx)
}
