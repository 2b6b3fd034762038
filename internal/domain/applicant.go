package domain

import (
	"errors"
	"fmt"
	"time"
)

// Applicant validation errors
var (
	ErrEmptyApplicantName      = errors.New("applicant name cannot be empty")
	ErrInvalidEmploymentStatus = errors.New("invalid employment status")
	ErrInvalidMaritalStatus    = errors.New("invalid marital status")
	ErrInvalidSex              = errors.New("invalid sex")
	ErrEmptyDateOfBirth        = errors.New("date of birth is required")
	ErrEmptyRelation           = errors.New("household member must have a relation to the applicant")
)

// Employment statuses accepted for applicants and household members.
const (
	EmploymentStatusEmployed   = "employed"
	EmploymentStatusUnemployed = "unemployed"
)

// Marital statuses accepted for applicants.
const (
	MaritalStatusSingle   = "single"
	MaritalStatusMarried  = "married"
	MaritalStatusWidowed  = "widowed"
	MaritalStatusDivorced = "divorced"
)

// Sexes accepted for applicants and household members.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Relations that mark a household member as the applicant's child.
// Other relation labels are free text and carry no special meaning.
const (
	RelationSon      = "son"
	RelationDaughter = "daughter"
)

// ValidEmploymentStatus reports whether s is an accepted employment status.
func ValidEmploymentStatus(s string) bool {
	return s == EmploymentStatusEmployed || s == EmploymentStatusUnemployed
}

// ValidMaritalStatus reports whether s is an accepted marital status.
func ValidMaritalStatus(s string) bool {
	switch s {
	case MaritalStatusSingle, MaritalStatusMarried, MaritalStatusWidowed, MaritalStatusDivorced:
		return true
	}
	return false
}

// ValidSex reports whether s is an accepted sex value.
func ValidSex(s string) bool {
	return s == SexMale || s == SexFemale
}

// Applicant represents a person who may apply for assistance schemes.
// The eligibility engine only ever reads applicants; they are created via
// registration and never mutated by the engine.
type Applicant struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	MaritalStatus    string    `json:"marital_status"`
	EmploymentStatus string    `json:"employment_status"`
	Sex              string    `json:"sex"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	CreatedAt        time.Time `json:"created_at"`
}

// Validate checks if the Applicant has valid data.
func (a *Applicant) Validate() error {
	if a.Name == "" {
		return ErrEmptyApplicantName
	}
	if !ValidEmploymentStatus(a.EmploymentStatus) {
		return fmt.Errorf("%w: %q", ErrInvalidEmploymentStatus, a.EmploymentStatus)
	}
	if !ValidMaritalStatus(a.MaritalStatus) {
		return fmt.Errorf("%w: %q", ErrInvalidMaritalStatus, a.MaritalStatus)
	}
	if !ValidSex(a.Sex) {
		return fmt.Errorf("%w: %q", ErrInvalidSex, a.Sex)
	}
	if a.DateOfBirth.IsZero() {
		return ErrEmptyDateOfBirth
	}
	return nil
}

// HouseholdMember belongs to exactly one applicant. The relation label is
// free text, but "son" and "daughter" are significant to the household
// classifier.
type HouseholdMember struct {
	ID               int64     `json:"id"`
	ApplicantID      int64     `json:"applicant_id"`
	Name             string    `json:"name"`
	EmploymentStatus string    `json:"employment_status"`
	Sex              string    `json:"sex"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Relation         string    `json:"relation"`
	CreatedAt        time.Time `json:"created_at"`
}

// Validate checks if the HouseholdMember has valid data.
func (m *HouseholdMember) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("household member must have a name")
	}
	if !ValidEmploymentStatus(m.EmploymentStatus) {
		return fmt.Errorf("%w for household member %q", ErrInvalidEmploymentStatus, m.Name)
	}
	if !ValidSex(m.Sex) {
		return fmt.Errorf("%w for household member %q", ErrInvalidSex, m.Name)
	}
	if m.DateOfBirth.IsZero() {
		return fmt.Errorf("household member %q must have a date of birth", m.Name)
	}
	if m.Relation == "" {
		return fmt.Errorf("%w: %q", ErrEmptyRelation, m.Name)
	}
	return nil
}

// IsChild reports whether the member's relation marks them as the
// applicant's child.
func (m *HouseholdMember) IsChild() bool {
	return m.Relation == RelationSon || m.Relation == RelationDaughter
}
