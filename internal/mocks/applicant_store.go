package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/store"
)

// MockApplicantStore implements store.ApplicantStore for testing
type MockApplicantStore struct {
	CreateFn                func(ctx context.Context, applicant *domain.Applicant) error
	CreateHouseholdMemberFn func(ctx context.Context, member *domain.HouseholdMember) error
	GetByIDFn               func(ctx context.Context, id int64) (*domain.Applicant, error)
	FindByNameAndDOBFn      func(ctx context.Context, name string, dob time.Time) (*domain.Applicant, error)
	GetHouseholdFn          func(ctx context.Context, applicantID int64) ([]domain.HouseholdMember, error)
	ListFn                  func(ctx context.Context) ([]domain.Applicant, error)

	// Default values used when functions aren't explicitly defined
	Applicant  *domain.Applicant
	Applicants []domain.Applicant
	Household  []domain.HouseholdMember
	Err        error
}

var _ store.ApplicantStore = (*MockApplicantStore)(nil)

func (m *MockApplicantStore) Create(ctx context.Context, applicant *domain.Applicant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, applicant)
	}
	return m.Err
}

func (m *MockApplicantStore) CreateHouseholdMember(
	ctx context.Context,
	member *domain.HouseholdMember,
) error {
	if m.CreateHouseholdMemberFn != nil {
		return m.CreateHouseholdMemberFn(ctx, member)
	}
	return m.Err
}

func (m *MockApplicantStore) GetByID(ctx context.Context, id int64) (*domain.Applicant, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Applicant, m.Err
}

func (m *MockApplicantStore) FindByNameAndDOB(
	ctx context.Context,
	name string,
	dob time.Time,
) (*domain.Applicant, error) {
	if m.FindByNameAndDOBFn != nil {
		return m.FindByNameAndDOBFn(ctx, name, dob)
	}
	return m.Applicant, m.Err
}

func (m *MockApplicantStore) GetHousehold(
	ctx context.Context,
	applicantID int64,
) ([]domain.HouseholdMember, error) {
	if m.GetHouseholdFn != nil {
		return m.GetHouseholdFn(ctx, applicantID)
	}
	return m.Household, m.Err
}

func (m *MockApplicantStore) List(ctx context.Context) ([]domain.Applicant, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Applicants, m.Err
}

// WithTx returns the mock itself; transaction boundaries are not modeled.
func (m *MockApplicantStore) WithTx(tx *sql.Tx) store.ApplicantStore {
	return m
}
