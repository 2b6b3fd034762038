package service_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/mocks"
	"github.com/schemesvc/fas-api/internal/service"
	"github.com/schemesvc/fas-api/internal/service/eligibility"
	"github.com/schemesvc/fas-api/internal/store"
)

func submitRequest() service.SubmitApplicationRequest {
	return service.SubmitApplicationRequest{
		Name:          "James",
		DateOfBirth:   time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC),
		SchemeApplied: domain.SchemeRetrenchment,
	}
}

func registeredApplicant(employmentStatus string) *domain.Applicant {
	return &domain.Applicant{
		ID:               42,
		Name:             "James",
		MaritalStatus:    domain.MaritalStatusSingle,
		EmploymentStatus: employmentStatus,
		Sex:              domain.SexMale,
		DateOfBirth:      time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newApplicationService(
	applicants *mocks.MockApplicantStore,
	applications *mocks.MockApplicationStore,
) service.ApplicationService {
	gate := eligibility.NewService(applicants, &mocks.MockSchemeStore{}, nil)
	return service.NewApplicationService(applicants, applications, gate, slog.Default())
}

func TestSubmitUnknownScheme(t *testing.T) {
	t.Parallel()

	lookups := 0
	applicants := &mocks.MockApplicantStore{
		FindByNameAndDOBFn: func(ctx context.Context, name string, dob time.Time) (*domain.Applicant, error) {
			lookups++
			return registeredApplicant(domain.EmploymentStatusUnemployed), nil
		},
	}
	applications := &mocks.MockApplicationStore{}
	svc := newApplicationService(applicants, applications)

	req := submitRequest()
	req.SchemeApplied = "Housing Grant"

	result, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnknownScheme)
	assert.Nil(t, result)
	assert.Zero(t, lookups, "scheme name must be rejected before any lookup")
}

func TestSubmitNoMatchingApplicant(t *testing.T) {
	t.Parallel()

	inserts := 0
	applicants := &mocks.MockApplicantStore{Err: store.ErrApplicantNotFound}
	applications := &mocks.MockApplicationStore{
		CreateFn: func(ctx context.Context, application *domain.Application) error {
			inserts++
			return nil
		},
	}
	svc := newApplicationService(applicants, applications)

	result, err := svc.Submit(context.Background(), submitRequest())
	assert.ErrorIs(t, err, service.ErrNoMatchingApplicant)
	assert.Nil(t, result)
	assert.Zero(t, inserts, "no application row may be written on a failed lookup")
}

func TestSubmitAppendsRowPerAdjudication(t *testing.T) {
	t.Parallel()

	// Applications are append-only: resubmitting for the same applicant
	// records a second adjudication rather than replacing the first.
	var inserted []*domain.Application
	applicants := &mocks.MockApplicantStore{
		Applicant: registeredApplicant(domain.EmploymentStatusUnemployed),
	}
	applications := &mocks.MockApplicationStore{
		CreateFn: func(ctx context.Context, application *domain.Application) error {
			inserted = append(inserted, application)
			return nil
		},
	}
	svc := newApplicationService(applicants, applications)

	first, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	second, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	require.Len(t, inserted, 2)
	assert.Equal(t, first, inserted[0])
	assert.Equal(t, second, inserted[1])
	assert.Equal(t, int64(42), inserted[0].ApplicantID)
	assert.Equal(t, int64(42), inserted[1].ApplicantID)
}

func TestSubmitDerivesOutcomeFromGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		employmentStatus string
		wantEligible     string
		wantStatus       string
	}{
		{
			name:             "unemployed applicant approved",
			employmentStatus: domain.EmploymentStatusUnemployed,
			wantEligible:     domain.EligibleYes,
			wantStatus:       domain.ApplicationApproved,
		},
		{
			name:             "employed applicant denied but still recorded",
			employmentStatus: domain.EmploymentStatusEmployed,
			wantEligible:     domain.EligibleNo,
			wantStatus:       domain.ApplicationDenied,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inserted *domain.Application
			applicants := &mocks.MockApplicantStore{
				Applicant: registeredApplicant(tt.employmentStatus),
			}
			applications := &mocks.MockApplicationStore{
				CreateFn: func(ctx context.Context, application *domain.Application) error {
					inserted = application
					return nil
				},
			}
			svc := newApplicationService(applicants, applications)

			result, err := svc.Submit(context.Background(), submitRequest())
			require.NoError(t, err)
			require.NotNil(t, inserted)

			assert.Equal(t, int64(42), result.ApplicantID)
			assert.Equal(t, domain.SchemeRetrenchment, result.SchemeApplied)
			assert.Equal(t, tt.wantEligible, result.Eligible)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, inserted, result)
		})
	}
}
