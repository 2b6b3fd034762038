package mocks

import (
	"context"
	"database/sql"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/store"
)

// MockSchemeStore implements store.SchemeStore for testing
type MockSchemeStore struct {
	CreateFn            func(ctx context.Context, scheme *domain.Scheme) error
	DeleteFn            func(ctx context.Context, id int64) error
	ListFn              func(ctx context.Context) ([]domain.Scheme, error)
	ListCriteriaFn      func(ctx context.Context) ([]domain.Criteria, error)
	ListBenefitsFn      func(ctx context.Context) ([]domain.Benefit, error)
	GetSchemeBenefitsFn func(ctx context.Context, schemeID int64) ([]store.SchemeBenefitRow, error)

	// Default values used when functions aren't explicitly defined
	Schemes     []domain.Scheme
	Criteria    []domain.Criteria
	Benefits    []domain.Benefit
	BenefitRows []store.SchemeBenefitRow
	Err         error
}

var _ store.SchemeStore = (*MockSchemeStore)(nil)

func (m *MockSchemeStore) Create(ctx context.Context, scheme *domain.Scheme) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, scheme)
	}
	return m.Err
}

func (m *MockSchemeStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockSchemeStore) List(ctx context.Context) ([]domain.Scheme, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Schemes, m.Err
}

func (m *MockSchemeStore) ListCriteria(ctx context.Context) ([]domain.Criteria, error) {
	if m.ListCriteriaFn != nil {
		return m.ListCriteriaFn(ctx)
	}
	return m.Criteria, m.Err
}

func (m *MockSchemeStore) ListBenefits(ctx context.Context) ([]domain.Benefit, error) {
	if m.ListBenefitsFn != nil {
		return m.ListBenefitsFn(ctx)
	}
	return m.Benefits, m.Err
}

func (m *MockSchemeStore) GetSchemeBenefits(
	ctx context.Context,
	schemeID int64,
) ([]store.SchemeBenefitRow, error) {
	if m.GetSchemeBenefitsFn != nil {
		return m.GetSchemeBenefitsFn(ctx, schemeID)
	}
	return m.BenefitRows, m.Err
}

// WithTx returns the mock itself; transaction boundaries are not modeled.
func (m *MockSchemeStore) WithTx(tx *sql.Tx) store.SchemeStore {
	return m
}
