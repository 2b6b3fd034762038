package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/store"
)

// MockAdminStore implements store.AdminStore for testing
type MockAdminStore struct {
	CreateFn        func(ctx context.Context, admin *domain.Admin) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Admin, error)
	ListFn          func(ctx context.Context) ([]domain.Admin, error)
	DeleteFn        func(ctx context.Context, id uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Admin  *domain.Admin
	Admins []domain.Admin
	Err    error
}

var _ store.AdminStore = (*MockAdminStore)(nil)

func (m *MockAdminStore) Create(ctx context.Context, admin *domain.Admin) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, admin)
	}
	return m.Err
}

func (m *MockAdminStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Admin, m.Err
}

func (m *MockAdminStore) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return m.Admin, m.Err
}

func (m *MockAdminStore) List(ctx context.Context) ([]domain.Admin, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Admins, m.Err
}

func (m *MockAdminStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx returns the mock itself; transaction boundaries are not modeled.
func (m *MockAdminStore) WithTx(tx *sql.Tx) store.AdminStore {
	return m
}
