package store

import (
	"context"
	"database/sql"

	"github.com/schemesvc/fas-api/internal/domain"
)

// SchemeBenefitRow is one row of the schemes/criteria/benefits join used by
// the scheme matcher. Duplicate scheme names across rows are grouped by the
// caller.
type SchemeBenefitRow struct {
	SchemeName    string
	BenefitName   string
	BenefitAmount float64
}

// SchemeStore defines the interface for scheme catalog persistence.
// Criteria and benefit rows are owned 1:1/1:N by a scheme that must exist
// first; multi-row writes run inside a caller-managed transaction.
type SchemeStore interface {
	// Create saves a scheme together with its criteria and benefit rows,
	// assigning generated IDs. Insertion order is scheme, criteria, then
	// benefits. Callers wanting atomicity must pass a transaction-scoped
	// store obtained via WithTx.
	Create(ctx context.Context, scheme *domain.Scheme) error

	// Delete removes a scheme and its criteria and benefit rows.
	// Returns ErrSchemeNotFound if the scheme does not exist.
	Delete(ctx context.Context, id int64) error

	// List returns all schemes (without criteria or benefits), ordered by ID.
	List(ctx context.Context) ([]domain.Scheme, error)

	// ListCriteria returns every criteria row in the catalog.
	ListCriteria(ctx context.Context) ([]domain.Criteria, error)

	// ListBenefits returns every benefit row in the catalog.
	ListBenefits(ctx context.Context) ([]domain.Benefit, error)

	// GetSchemeBenefits returns the joined scheme/benefit rows for one
	// scheme ID in benefit insertion order. A missing scheme yields an
	// empty slice, not an error.
	GetSchemeBenefits(ctx context.Context, schemeID int64) ([]SchemeBenefitRow, error)

	// WithTx returns a new SchemeStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) SchemeStore
}
