package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scheme validation errors
var (
	ErrEmptySchemeName      = errors.New("scheme name cannot be empty")
	ErrMissingCriteria      = errors.New("scheme criteria are required")
	ErrMissingSchoolLevel   = errors.New("school level is required when children are required")
	ErrEmptyBenefitName     = errors.New("each benefit must have a name")
	ErrNegativeBenefitValue = errors.New("benefit amount cannot be negative")
	ErrUnknownScheme        = errors.New("unknown scheme")
)

// Names of the two seeded retrenchment assistance schemes. Application
// submissions are restricted to this set.
const (
	SchemeRetrenchment         = "Retrenchment Assistance Scheme"
	SchemeRetrenchmentFamilies = "Retrenchment Assistance Scheme (families)"
)

// KnownSchemeNames lists the scheme names an application may be submitted
// against, in catalog order.
func KnownSchemeNames() []string {
	return []string{SchemeRetrenchment, SchemeRetrenchmentFamilies}
}

// IsKnownSchemeName reports whether name identifies a scheme applications
// can target.
func IsKnownSchemeName(name string) bool {
	return name == SchemeRetrenchment || name == SchemeRetrenchmentFamilies
}

// Scheme is a named bundle of eligibility criteria and monetary benefits.
type Scheme struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Criteria *Criteria `json:"criteria,omitempty"`
	Benefits []Benefit `json:"benefits,omitempty"`
}

// Criteria is the eligibility predicate attached to a scheme. SchoolLevel is
// only meaningful when ChildrenRequired is set.
type Criteria struct {
	ID               int64  `json:"id"`
	SchemeID         int64  `json:"scheme_id"`
	SchemeName       string `json:"scheme_name"`
	EmploymentStatus string `json:"employment_status"`
	ChildrenRequired bool   `json:"children_required"`
	SchoolLevel      string `json:"school_level,omitempty"`
}

// Benefit is a named monetary amount granted under a scheme.
type Benefit struct {
	ID         int64   `json:"id"`
	SchemeID   int64   `json:"scheme_id"`
	SchemeName string  `json:"scheme_name"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
}

// Validate checks a scheme definition before it is persisted.
// The scheme must carry criteria with an employment status, and every
// benefit must be named with a non-negative amount.
func (s *Scheme) Validate() error {
	if s.Name == "" {
		return ErrEmptySchemeName
	}
	if s.Criteria == nil {
		return ErrMissingCriteria
	}
	if s.Criteria.EmploymentStatus == "" {
		return fmt.Errorf("%w: employment_status is required", ErrMissingCriteria)
	}
	if s.Criteria.ChildrenRequired && s.Criteria.SchoolLevel == "" {
		return ErrMissingSchoolLevel
	}
	for _, b := range s.Benefits {
		if b.Name == "" {
			return ErrEmptyBenefitName
		}
		if b.Amount < 0 {
			return fmt.Errorf("%w: %q", ErrNegativeBenefitValue, b.Name)
		}
	}
	return nil
}

// Display renders the benefit as "Name ($amount)". Whole amounts keep one
// trailing decimal ("$500.0") to stay wire-compatible with existing clients.
func (b Benefit) Display() string {
	amount := strconv.FormatFloat(b.Amount, 'f', -1, 64)
	if !strings.Contains(amount, ".") {
		amount += ".0"
	}
	return fmt.Sprintf("%s ($%s)", b.Name, amount)
}
