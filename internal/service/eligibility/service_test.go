package eligibility_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/mocks"
	"github.com/schemesvc/fas-api/internal/service/eligibility"
	"github.com/schemesvc/fas-api/internal/store"
)

func testApplicant(id int64, employmentStatus string) *domain.Applicant {
	return &domain.Applicant{
		ID:               id,
		Name:             "Mary",
		MaritalStatus:    domain.MaritalStatusMarried,
		EmploymentStatus: employmentStatus,
		Sex:              domain.SexFemale,
		DateOfBirth:      time.Date(1984, 10, 6, 0, 0, 0, 0, time.UTC),
	}
}

func TestCheckGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		applicant    *domain.Applicant
		storeErr     error
		wantEligible bool
		wantReason   string
		wantErr      error
	}{
		{
			name:         "unemployed applicant passes",
			applicant:    testApplicant(1, domain.EmploymentStatusUnemployed),
			wantEligible: true,
		},
		{
			name:         "employed applicant fails with reason",
			applicant:    testApplicant(1, domain.EmploymentStatusEmployed),
			wantEligible: false,
			wantReason:   eligibility.ReasonNotUnemployed,
		},
		{
			name:     "missing applicant surfaces store error",
			storeErr: store.ErrApplicantNotFound,
			wantErr:  store.ErrApplicantNotFound,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			applicants := &mocks.MockApplicantStore{Applicant: tt.applicant, Err: tt.storeErr}
			schemes := &mocks.MockSchemeStore{}
			svc := eligibility.NewService(applicants, schemes, nil)

			result, err := svc.CheckGate(context.Background(), 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEligible, result.Eligible)
			assert.Equal(t, tt.wantReason, result.Reason)
		})
	}
}

func TestMatchSchemesSelectsByHousehold(t *testing.T) {
	t.Parallel()

	const currentYear = 2026

	tests := []struct {
		name         string
		household    []domain.HouseholdMember
		wantSchemeID int64
	}{
		{
			name:         "no household selects base scheme",
			household:    nil,
			wantSchemeID: 1,
		},
		{
			name: "school-age child selects family scheme",
			household: []domain.HouseholdMember{
				member(domain.RelationDaughter, currentYear-9),
			},
			wantSchemeID: 2,
		},
		{
			name: "adult child selects base scheme",
			household: []domain.HouseholdMember{
				member(domain.RelationSon, currentYear-20),
			},
			wantSchemeID: 1,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var requestedSchemeID int64
			applicants := &mocks.MockApplicantStore{Household: tt.household}
			schemes := &mocks.MockSchemeStore{
				GetSchemeBenefitsFn: func(ctx context.Context, schemeID int64) ([]store.SchemeBenefitRow, error) {
					requestedSchemeID = schemeID
					return nil, nil
				},
			}

			svc := eligibility.NewService(applicants, schemes, nil)
			svc.SetTimeFunc(func() time.Time {
				return time.Date(currentYear, 6, 1, 0, 0, 0, 0, time.UTC)
			})

			result, err := svc.MatchSchemes(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSchemeID, requestedSchemeID)
			assert.Empty(t, result.EligibleSchemes)
			assert.NotNil(t, result.EligibleSchemes, "no matched benefits must yield an empty slice")
		})
	}
}

func TestMatchSchemesGroupsBenefitRows(t *testing.T) {
	t.Parallel()

	applicants := &mocks.MockApplicantStore{}
	schemes := &mocks.MockSchemeStore{
		BenefitRows: []store.SchemeBenefitRow{
			{SchemeName: domain.SchemeRetrenchment, BenefitName: "SkillsFuture Credits", BenefitAmount: 500},
			{SchemeName: domain.SchemeRetrenchment, BenefitName: "CDC Vouchers", BenefitAmount: 200},
		},
	}

	svc := eligibility.NewService(applicants, schemes, nil)

	result, err := svc.MatchSchemes(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, result.EligibleSchemes, 1)
	summary := result.EligibleSchemes[0]
	assert.Equal(t, domain.SchemeRetrenchment, summary.SchemeName)
	assert.Equal(t, "Financial assistance for retrenched workers", summary.Description)
	assert.Equal(t, []string{
		"SkillsFuture Credits ($500.0)",
		"CDC Vouchers ($200.0)",
	}, summary.Benefits)
	assert.Equal(t, int64(7), result.ApplicantID)
}

func TestEligibleSchemes(t *testing.T) {
	t.Parallel()

	t.Run("gate failure maps to ErrNotEligible", func(t *testing.T) {
		t.Parallel()

		applicants := &mocks.MockApplicantStore{
			Applicant: testApplicant(1, domain.EmploymentStatusEmployed),
		}
		svc := eligibility.NewService(applicants, &mocks.MockSchemeStore{}, nil)

		result, err := svc.EligibleSchemes(context.Background(), 1)
		assert.ErrorIs(t, err, eligibility.ErrNotEligible)
		assert.Nil(t, result)
	})

	t.Run("missing applicant passes through", func(t *testing.T) {
		t.Parallel()

		applicants := &mocks.MockApplicantStore{Err: store.ErrApplicantNotFound}
		svc := eligibility.NewService(applicants, &mocks.MockSchemeStore{}, nil)

		result, err := svc.EligibleSchemes(context.Background(), 99)
		assert.ErrorIs(t, err, store.ErrApplicantNotFound)
		assert.Nil(t, result)
	})

	t.Run("passing gate matches schemes", func(t *testing.T) {
		t.Parallel()

		applicants := &mocks.MockApplicantStore{
			Applicant: testApplicant(3, domain.EmploymentStatusUnemployed),
		}
		schemes := &mocks.MockSchemeStore{
			BenefitRows: []store.SchemeBenefitRow{
				{SchemeName: domain.SchemeRetrenchment, BenefitName: "SkillsFuture Credits", BenefitAmount: 500},
			},
		}

		svc := eligibility.NewService(applicants, schemes, nil)

		result, err := svc.EligibleSchemes(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, result.EligibleSchemes, 1)
		assert.Equal(t, int64(3), result.ApplicantID)
	})
}
