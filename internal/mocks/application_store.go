package mocks

import (
	"context"
	"database/sql"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/store"
)

// MockApplicationStore implements store.ApplicationStore for testing
type MockApplicationStore struct {
	CreateFn func(ctx context.Context, application *domain.Application) error
	ListFn   func(ctx context.Context) ([]domain.Application, error)

	// Default values used when functions aren't explicitly defined
	Applications []domain.Application
	Err          error
}

var _ store.ApplicationStore = (*MockApplicationStore)(nil)

func (m *MockApplicationStore) Create(ctx context.Context, application *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, application)
	}
	return m.Err
}

func (m *MockApplicationStore) List(ctx context.Context) ([]domain.Application, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Applications, m.Err
}

// WithTx returns the mock itself; transaction boundaries are not modeled.
func (m *MockApplicationStore) WithTx(tx *sql.Tx) store.ApplicationStore {
	return m
}
