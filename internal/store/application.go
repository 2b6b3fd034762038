package store

import (
	"context"
	"database/sql"

	"github.com/schemesvc/fas-api/internal/domain"
)

// ApplicationStore defines the interface for application persistence.
// Applications are append-only: there is no update or delete path.
type ApplicationStore interface {
	// Create saves a new application record and assigns its generated ID.
	Create(ctx context.Context, application *domain.Application) error

	// List returns all applications, ordered by ID.
	List(ctx context.Context) ([]domain.Application, error)

	// WithTx returns a new ApplicationStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ApplicationStore
}
