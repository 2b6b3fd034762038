package eligibility

import "github.com/schemesvc/fas-api/internal/domain"

// Inclusive age range for a primary-school-age child.
const (
	SchoolAgeMin = 7
	SchoolAgeMax = 12
)

// HasSchoolAgeChild reports whether the household contains a child (relation
// "son" or "daughter") of primary school age in the given calendar year.
//
// Age is computed as currentYear minus the birth year, ignoring month and
// day: a child born in December counts a full year older on the next
// January 1. This coarse arithmetic is a compatibility requirement, not an
// oversight; keeping it behind this function makes a future precise-date
// calculation a one-place change.
func HasSchoolAgeChild(members []domain.HouseholdMember, currentYear int) bool {
	for _, m := range members {
		if !m.IsChild() {
			continue
		}
		age := currentYear - m.DateOfBirth.Year()
		if age >= SchoolAgeMin && age <= SchoolAgeMax {
			return true
		}
	}
	return false
}
