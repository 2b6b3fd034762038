package eligibility_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/service/eligibility"
)

func member(relation string, birthYear int) domain.HouseholdMember {
	return domain.HouseholdMember{
		Name:             "member",
		EmploymentStatus: domain.EmploymentStatusUnemployed,
		Sex:              domain.SexFemale,
		DateOfBirth:      time.Date(birthYear, 6, 15, 0, 0, 0, 0, time.UTC),
		Relation:         relation,
	}
}

func TestHasSchoolAgeChild(t *testing.T) {
	t.Parallel()

	const currentYear = 2026

	tests := []struct {
		name    string
		members []domain.HouseholdMember
		want    bool
	}{
		{
			name:    "empty household",
			members: nil,
			want:    false,
		},
		{
			name:    "child below range",
			members: []domain.HouseholdMember{member(domain.RelationSon, currentYear-6)},
			want:    false,
		},
		{
			name:    "child at lower bound",
			members: []domain.HouseholdMember{member(domain.RelationSon, currentYear-7)},
			want:    true,
		},
		{
			name:    "child at upper bound",
			members: []domain.HouseholdMember{member(domain.RelationDaughter, currentYear-12)},
			want:    true,
		},
		{
			name:    "child above range",
			members: []domain.HouseholdMember{member(domain.RelationDaughter, currentYear-13)},
			want:    false,
		},
		{
			name:    "school-age member who is not a child",
			members: []domain.HouseholdMember{member("sibling", currentYear-10)},
			want:    false,
		},
		{
			name: "one qualifying child among others",
			members: []domain.HouseholdMember{
				member("spouse", currentYear-35),
				member(domain.RelationSon, currentYear-3),
				member(domain.RelationDaughter, currentYear-9),
			},
			want: true,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, eligibility.HasSchoolAgeChild(tt.members, currentYear))
		})
	}
}

// A December birth counts a full year older on the next January 1; only the
// calendar year enters the age arithmetic.
func TestHasSchoolAgeChildIgnoresMonthAndDay(t *testing.T) {
	t.Parallel()

	const currentYear = 2026

	born := domain.HouseholdMember{
		Name:             "late-year child",
		EmploymentStatus: domain.EmploymentStatusUnemployed,
		Sex:              domain.SexMale,
		DateOfBirth:      time.Date(currentYear-7, 12, 31, 0, 0, 0, 0, time.UTC),
		Relation:         domain.RelationSon,
	}

	assert.True(t, eligibility.HasSchoolAgeChild([]domain.HouseholdMember{born}, currentYear))
}
