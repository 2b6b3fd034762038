package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/schemesvc/fas-api/internal/domain"
)

// ApplicantStore defines the interface for applicant and household member
// data persistence. Household members always belong to an already-persisted
// applicant.
type ApplicantStore interface {
	// Create saves a new applicant and assigns its generated ID.
	// Returns validation errors from the domain Applicant if data is invalid.
	Create(ctx context.Context, applicant *domain.Applicant) error

	// CreateHouseholdMember saves a new household member for an existing
	// applicant and assigns its generated ID.
	// Returns ErrInvalidEntity if the referenced applicant does not exist.
	CreateHouseholdMember(ctx context.Context, member *domain.HouseholdMember) error

	// GetByID retrieves an applicant by their unique ID.
	// Returns ErrApplicantNotFound if the applicant does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Applicant, error)

	// FindByNameAndDOB retrieves an applicant by exact match on name and
	// date of birth. Returns ErrApplicantNotFound if there is no match.
	FindByNameAndDOB(ctx context.Context, name string, dob time.Time) (*domain.Applicant, error)

	// GetHousehold returns the applicant's household members in insertion
	// order. An applicant with no household yields an empty slice, not an
	// error.
	GetHousehold(ctx context.Context, applicantID int64) ([]domain.HouseholdMember, error)

	// List returns all applicants, ordered by ID.
	List(ctx context.Context) ([]domain.Applicant, error)

	// WithTx returns a new ApplicantStore instance that uses the provided
	// transaction. This allows the applicant and its household members to
	// be inserted atomically.
	WithTx(tx *sql.Tx) ApplicantStore
}
