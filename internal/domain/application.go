package domain

import "time"

// Application outcome values. Eligible mirrors the legacy yes/no column
// rather than a boolean; both are derived, never supplied by the caller.
const (
	EligibleYes = "yes"
	EligibleNo  = "no"

	ApplicationApproved = "approved"
	ApplicationDenied   = "denied"
)

// Application records one adjudicated scheme application. It snapshots the
// applicant's name and date of birth at submission time and is immutable
// once created; there is no update or delete path.
type Application struct {
	ID            int64     `json:"id"`
	ApplicantID   int64     `json:"applicant_id"`
	SchemeApplied string    `json:"scheme_applied"`
	Name          string    `json:"name"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	Eligible      string    `json:"eligible"`
	Status        string    `json:"application_status"`
	CreatedAt     time.Time `json:"created_at"`
}
