package mocks

import (
	"context"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/service"
)

// MockApplicantService implements service.ApplicantService for testing
type MockApplicantService struct {
	CreateWithHouseholdFn func(ctx context.Context, applicant *domain.Applicant, household []domain.HouseholdMember) error
	GetApplicantFn        func(ctx context.Context, id int64) (*domain.Applicant, error)
	ListApplicantsFn      func(ctx context.Context) ([]domain.Applicant, error)
	GetHouseholdFn        func(ctx context.Context, applicantID int64) ([]domain.HouseholdMember, error)

	Applicant  *domain.Applicant
	Applicants []domain.Applicant
	Household  []domain.HouseholdMember
	Err        error
}

var _ service.ApplicantService = (*MockApplicantService)(nil)

func (m *MockApplicantService) CreateWithHousehold(
	ctx context.Context,
	applicant *domain.Applicant,
	household []domain.HouseholdMember,
) error {
	if m.CreateWithHouseholdFn != nil {
		return m.CreateWithHouseholdFn(ctx, applicant, household)
	}
	return m.Err
}

func (m *MockApplicantService) GetApplicant(ctx context.Context, id int64) (*domain.Applicant, error) {
	if m.GetApplicantFn != nil {
		return m.GetApplicantFn(ctx, id)
	}
	return m.Applicant, m.Err
}

func (m *MockApplicantService) ListApplicants(ctx context.Context) ([]domain.Applicant, error) {
	if m.ListApplicantsFn != nil {
		return m.ListApplicantsFn(ctx)
	}
	return m.Applicants, m.Err
}

func (m *MockApplicantService) GetHousehold(
	ctx context.Context,
	applicantID int64,
) ([]domain.HouseholdMember, error) {
	if m.GetHouseholdFn != nil {
		return m.GetHouseholdFn(ctx, applicantID)
	}
	return m.Household, m.Err
}

// MockSchemeService implements service.SchemeService for testing
type MockSchemeService struct {
	CreateSchemeFn func(ctx context.Context, scheme *domain.Scheme) error
	DeleteSchemeFn func(ctx context.Context, id int64) error
	ListSchemesFn  func(ctx context.Context) ([]domain.Scheme, error)
	ListCriteriaFn func(ctx context.Context) ([]domain.Criteria, error)
	ListBenefitsFn func(ctx context.Context) ([]domain.Benefit, error)

	Schemes  []domain.Scheme
	Criteria []domain.Criteria
	Benefits []domain.Benefit
	Err      error
}

var _ service.SchemeService = (*MockSchemeService)(nil)

func (m *MockSchemeService) CreateScheme(ctx context.Context, scheme *domain.Scheme) error {
	if m.CreateSchemeFn != nil {
		return m.CreateSchemeFn(ctx, scheme)
	}
	return m.Err
}

func (m *MockSchemeService) DeleteScheme(ctx context.Context, id int64) error {
	if m.DeleteSchemeFn != nil {
		return m.DeleteSchemeFn(ctx, id)
	}
	return m.Err
}

func (m *MockSchemeService) ListSchemes(ctx context.Context) ([]domain.Scheme, error) {
	if m.ListSchemesFn != nil {
		return m.ListSchemesFn(ctx)
	}
	return m.Schemes, m.Err
}

func (m *MockSchemeService) ListCriteria(ctx context.Context) ([]domain.Criteria, error) {
	if m.ListCriteriaFn != nil {
		return m.ListCriteriaFn(ctx)
	}
	return m.Criteria, m.Err
}

func (m *MockSchemeService) ListBenefits(ctx context.Context) ([]domain.Benefit, error) {
	if m.ListBenefitsFn != nil {
		return m.ListBenefitsFn(ctx)
	}
	return m.Benefits, m.Err
}

// MockApplicationService implements service.ApplicationService for testing
type MockApplicationService struct {
	SubmitFn           func(ctx context.Context, req service.SubmitApplicationRequest) (*domain.Application, error)
	ListApplicationsFn func(ctx context.Context) ([]domain.Application, error)

	Application  *domain.Application
	Applications []domain.Application
	Err          error
}

var _ service.ApplicationService = (*MockApplicationService)(nil)

func (m *MockApplicationService) Submit(
	ctx context.Context,
	req service.SubmitApplicationRequest,
) (*domain.Application, error) {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, req)
	}
	return m.Application, m.Err
}

func (m *MockApplicationService) ListApplications(ctx context.Context) ([]domain.Application, error) {
	if m.ListApplicationsFn != nil {
		return m.ListApplicationsFn(ctx)
	}
	return m.Applications, m.Err
}
