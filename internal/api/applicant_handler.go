package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/schemesvc/fas-api/internal/api/shared"
	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/service"
)

// ApplicantHandler handles applicant registration and listing requests.
type ApplicantHandler struct {
	applicantService service.ApplicantService
}

// NewApplicantHandler creates a new ApplicantHandler with the given dependencies.
func NewApplicantHandler(applicantService service.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{applicantService: applicantService}
}

// List handles GET /api/applicants.
func (h *ApplicantHandler) List(w http.ResponseWriter, r *http.Request) {
	applicants, err := h.applicantService.ListApplicants(r.Context())
	if err != nil {
		slog.Error("failed to list applicants", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list applicants")
		return
	}

	if len(applicants) == 0 {
		shared.RespondWithJSON(w, r, http.StatusNotFound, MessageResponse{Message: "No applicants found."})
		return
	}

	resp := make([]ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		resp = append(resp, toApplicantResponse(a))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Create handles POST /api/applicants. The applicant and their household
// members are inserted atomically.
func (h *ApplicantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicantRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	applicant, household, err := buildApplicant(req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid applicant data: "+err.Error())
		return
	}

	if err := applicant.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid applicant data: "+err.Error())
		return
	}
	for i := range household {
		if err := household[i].Validate(); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid household member data: "+err.Error())
			return
		}
	}

	if err := h.applicantService.CreateWithHousehold(r.Context(), applicant, household); err != nil {
		slog.Error("failed to create applicant", "error", err, "name", req.Name)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create applicant")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		MessageResponse{Message: "Applicant and household members inserted successfully"})
}

// buildApplicant converts a validated request into domain records, parsing
// the wire date format.
func buildApplicant(req CreateApplicantRequest) (*domain.Applicant, []domain.HouseholdMember, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, nil, err
	}

	applicant := &domain.Applicant{
		Name:             req.Name,
		MaritalStatus:    req.MaritalStatus,
		EmploymentStatus: req.EmploymentStatus,
		Sex:              req.Sex,
		DateOfBirth:      dob,
	}

	household := make([]domain.HouseholdMember, 0, len(req.Household))
	for _, m := range req.Household {
		memberDOB, err := time.Parse(dateLayout, m.DateOfBirth)
		if err != nil {
			return nil, nil, err
		}
		household = append(household, domain.HouseholdMember{
			Name:             m.Name,
			EmploymentStatus: m.EmploymentStatus,
			Sex:              m.Sex,
			DateOfBirth:      memberDOB,
			Relation:         m.Relation,
		})
	}

	return applicant, household, nil
}
