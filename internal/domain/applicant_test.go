package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schemesvc/fas-api/internal/domain"
)

func validApplicant() domain.Applicant {
	return domain.Applicant{
		Name:             "James",
		MaritalStatus:    domain.MaritalStatusSingle,
		EmploymentStatus: domain.EmploymentStatusUnemployed,
		Sex:              domain.SexMale,
		DateOfBirth:      time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestApplicantValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(a *domain.Applicant)
		wantErr error
	}{
		{
			name:    "valid applicant",
			mutate:  func(a *domain.Applicant) {},
			wantErr: nil,
		},
		{
			name:    "empty name",
			mutate:  func(a *domain.Applicant) { a.Name = "" },
			wantErr: domain.ErrEmptyApplicantName,
		},
		{
			name:    "bad employment status",
			mutate:  func(a *domain.Applicant) { a.EmploymentStatus = "retired" },
			wantErr: domain.ErrInvalidEmploymentStatus,
		},
		{
			name:    "bad marital status",
			mutate:  func(a *domain.Applicant) { a.MaritalStatus = "complicated" },
			wantErr: domain.ErrInvalidMaritalStatus,
		},
		{
			name:    "bad sex",
			mutate:  func(a *domain.Applicant) { a.Sex = "unknown" },
			wantErr: domain.ErrInvalidSex,
		},
		{
			name:    "missing date of birth",
			mutate:  func(a *domain.Applicant) { a.DateOfBirth = time.Time{} },
			wantErr: domain.ErrEmptyDateOfBirth,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := validApplicant()
			tt.mutate(&a)

			err := a.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHouseholdMemberValidate(t *testing.T) {
	t.Parallel()

	member := domain.HouseholdMember{
		Name:             "Gwen",
		EmploymentStatus: domain.EmploymentStatusUnemployed,
		Sex:              domain.SexFemale,
		DateOfBirth:      time.Date(2016, 3, 12, 0, 0, 0, 0, time.UTC),
		Relation:         domain.RelationDaughter,
	}
	assert.NoError(t, member.Validate())

	noRelation := member
	noRelation.Relation = ""
	assert.ErrorIs(t, noRelation.Validate(), domain.ErrEmptyRelation)
}

func TestHouseholdMemberIsChild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		relation string
		want     bool
	}{
		{domain.RelationSon, true},
		{domain.RelationDaughter, true},
		{"spouse", false},
		{"parent", false},
		{"", false},
	}

	for _, tt := range tests {

		tt := tt
		m := domain.HouseholdMember{Relation: tt.relation}
		assert.Equal(t, tt.want, m.IsChild(), "relation %q", tt.relation)
	}
}
