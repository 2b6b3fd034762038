package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/schemesvc/fas-api/internal/domain"
)

// dateLayout is the wire format for all date-of-birth fields.
const dateLayout = "2006-01-02"

// Common request/response structures

// RegisterRequest defines the payload for the administrator registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the administrator login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// AdminID is the unique identifier for the authenticated administrator
	AdminID uuid.UUID `json:"admin_id"`

	// Username echoes the authenticated administrator's login name
	Username string `json:"username"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// MessageResponse is the generic success envelope for write endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// AdminResponse is one administrator in a listing. Password hashes never
// leave the API.
type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// HouseholdMemberPayload is one household member in an applicant creation
// request.
type HouseholdMemberPayload struct {
	Name             string `json:"name"              validate:"required"`
	EmploymentStatus string `json:"employment_status" validate:"required,oneof=employed unemployed"`
	Sex              string `json:"sex"               validate:"required,oneof=male female"`
	DateOfBirth      string `json:"date_of_birth"     validate:"required,datetime=2006-01-02"`
	Relation         string `json:"relation"          validate:"required"`
}

// CreateApplicantRequest defines the payload for applicant registration,
// including the applicant's household.
type CreateApplicantRequest struct {
	Name             string                   `json:"name"              validate:"required"`
	EmploymentStatus string                   `json:"employment_status" validate:"required,oneof=employed unemployed"`
	Sex              string                   `json:"sex"               validate:"required,oneof=male female"`
	DateOfBirth      string                   `json:"date_of_birth"     validate:"required,datetime=2006-01-02"`
	MaritalStatus    string                   `json:"marital_status"    validate:"required,oneof=single married widowed divorced"`
	Household        []HouseholdMemberPayload `json:"household"         validate:"omitempty,dive"`
}

// ApplicantResponse is one applicant in a listing, with the wire date format.
type ApplicantResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	MaritalStatus    string `json:"marital_status"`
	EmploymentStatus string `json:"employment_status"`
	Sex              string `json:"sex"`
	DateOfBirth      string `json:"date_of_birth"`
}

// ChildrenCriteriaPayload qualifies a children requirement with a school level.
type ChildrenCriteriaPayload struct {
	SchoolLevel string `json:"school_level" validate:"required"`
}

// CriteriaPayload is the criteria object of a scheme creation request.
// Presence of HasChildren marks the scheme as requiring children.
type CriteriaPayload struct {
	EmploymentStatus string                   `json:"employment_status" validate:"required,oneof=employed unemployed"`
	HasChildren      *ChildrenCriteriaPayload `json:"has_children,omitempty"`
}

// BenefitPayload is one benefit of a scheme creation request.
type BenefitPayload struct {
	Name   string   `json:"name"   validate:"required"`
	Amount *float64 `json:"amount" validate:"required,gte=0"`
}

// CreateSchemeRequest defines the payload for adding a scheme with its
// criteria and benefits.
type CreateSchemeRequest struct {
	Name     string           `json:"name"     validate:"required"`
	Criteria *CriteriaPayload `json:"criteria" validate:"required"`
	Benefits []BenefitPayload `json:"benefits" validate:"required,dive"`
}

// SubmitApplicationRequest defines the payload for submitting a scheme
// application. SchemeApplied is checked against the known scheme names
// before any lookup occurs.
type SubmitApplicationRequest struct {
	Name          string `json:"name"           validate:"required"`
	DateOfBirth   string `json:"date_of_birth"  validate:"required,datetime=2006-01-02"`
	SchemeApplied string `json:"scheme_applied" validate:"required"`
}

// ApplicationResponse is one application in a listing.
type ApplicationResponse struct {
	ID            int64  `json:"id"`
	ApplicantID   int64  `json:"applicant_id"`
	SchemeApplied string `json:"scheme_applied"`
	Name          string `json:"name"`
	DateOfBirth   string `json:"date_of_birth"`
	Eligible      string `json:"eligible"`
	Status        string `json:"application_status"`
}

// EligibilityErrorResponse is the failure payload of the eligibility query.
// The legacy wire shape pairs the error text with result=false.
type EligibilityErrorResponse struct {
	Error  string `json:"error"`
	Result bool   `json:"result"`
}

// toApplicantResponse maps a domain applicant to its wire representation.
func toApplicantResponse(a domain.Applicant) ApplicantResponse {
	return ApplicantResponse{
		ID:               a.ID,
		Name:             a.Name,
		MaritalStatus:    a.MaritalStatus,
		EmploymentStatus: a.EmploymentStatus,
		Sex:              a.Sex,
		DateOfBirth:      a.DateOfBirth.Format(dateLayout),
	}
}

// toApplicationResponse maps a domain application to its wire representation.
func toApplicationResponse(a domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		ApplicantID:   a.ApplicantID,
		SchemeApplied: a.SchemeApplied,
		Name:          a.Name,
		DateOfBirth:   a.DateOfBirth.Format(dateLayout),
		Eligible:      a.Eligible,
		Status:        a.Status,
	}
}
