package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/schemesvc/fas-api/internal/domain"
)

// AdminStore defines the interface for administrator data persistence.
type AdminStore interface {
	// Create saves a new administrator to the store.
	// It handles domain validation and password hashing internally.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain Admin if data is invalid.
	Create(ctx context.Context, admin *domain.Admin) error

	// GetByID retrieves an administrator by their unique ID.
	// Returns ErrAdminNotFound if the administrator does not exist.
	// The returned admin contains all fields except the plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)

	// GetByUsername retrieves an administrator by their username.
	// Returns ErrAdminNotFound if the administrator does not exist.
	// The returned admin contains all fields except the plaintext password.
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)

	// List returns all administrators, ordered by creation time.
	List(ctx context.Context) ([]domain.Admin, error)

	// Delete removes an administrator from the store by their ID.
	// Returns ErrAdminNotFound if the administrator does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AdminStore instance that uses the provided
	// transaction. The transaction should be created and managed by the
	// caller (typically a service).
	WithTx(tx *sql.Tx) AdminStore
}
