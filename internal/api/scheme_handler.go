package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/schemesvc/fas-api/internal/api/shared"
	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/service"
	"github.com/schemesvc/fas-api/internal/service/eligibility"
	"github.com/schemesvc/fas-api/internal/store"
)

// SchemeHandler handles scheme catalog requests and the eligibility query.
type SchemeHandler struct {
	schemeService service.SchemeService
	eligibility   *eligibility.Service
}

// NewSchemeHandler creates a new SchemeHandler with the given dependencies.
func NewSchemeHandler(
	schemeService service.SchemeService,
	eligibilityService *eligibility.Service,
) *SchemeHandler {
	return &SchemeHandler{
		schemeService: schemeService,
		eligibility:   eligibilityService,
	}
}

// List handles GET /api/schemes.
func (h *SchemeHandler) List(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.schemeService.ListSchemes(r.Context())
	if err != nil {
		slog.Error("failed to list schemes", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list schemes")
		return
	}

	if len(schemes) == 0 {
		shared.RespondWithJSON(w, r, http.StatusNotFound, MessageResponse{Message: "No schemes found."})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, schemes)
}

// ListCriteria handles GET /api/schemes/criteria.
func (h *SchemeHandler) ListCriteria(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.schemeService.ListCriteria(r.Context())
	if err != nil {
		slog.Error("failed to list criteria", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list criteria")
		return
	}

	if len(criteria) == 0 {
		shared.RespondWithJSON(w, r, http.StatusNotFound, MessageResponse{Message: "No criteria found."})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, criteria)
}

// ListBenefits handles GET /api/schemes/benefits.
func (h *SchemeHandler) ListBenefits(w http.ResponseWriter, r *http.Request) {
	benefits, err := h.schemeService.ListBenefits(r.Context())
	if err != nil {
		slog.Error("failed to list benefits", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list benefits")
		return
	}

	if len(benefits) == 0 {
		shared.RespondWithJSON(w, r, http.StatusNotFound, MessageResponse{Message: "No benefits found."})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, benefits)
}

// Create handles POST /api/schemes.
func (h *SchemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSchemeRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	scheme := buildScheme(req)
	if err := scheme.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid scheme data: "+err.Error())
		return
	}

	if err := h.schemeService.CreateScheme(r.Context(), scheme); err != nil {
		slog.Error("failed to create scheme", "error", err, "name", req.Name)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create scheme")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Scheme added successfully."})
}

// Delete handles DELETE /api/schemes/{id}.
func (h *SchemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid scheme ID")
		return
	}

	if err := h.schemeService.DeleteScheme(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrSchemeNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Scheme not found")
			return
		}
		slog.Error("failed to delete scheme", "error", err, "scheme_id", id)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete scheme")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Scheme deleted successfully."})
}

// Eligible handles GET /api/schemes/eligible?applicant={id}.
//
// The failure payload keeps the legacy shape: the error text is paired
// with result=false, and a missing applicant (404) is reported distinctly
// from a registered applicant who fails the gate (400).
func (h *SchemeHandler) Eligible(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("applicant")
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Applicant ID is required")
		return
	}

	applicantID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid applicant ID")
		return
	}

	result, err := h.eligibility.EligibleSchemes(r.Context(), applicantID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrApplicantNotFound):
			shared.RespondWithJSON(w, r, http.StatusNotFound, EligibilityErrorResponse{
				Error:  "Applicant not found",
				Result: false,
			})
		case errors.Is(err, eligibility.ErrNotEligible):
			shared.RespondWithJSON(w, r, http.StatusBadRequest, EligibilityErrorResponse{
				Error:  eligibility.ReasonNotUnemployed,
				Result: false,
			})
		default:
			slog.Error("failed to determine eligible schemes", "error", err, "applicant_id", applicantID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to determine eligible schemes")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// buildScheme converts a validated request into a domain scheme with its
// criteria and benefits.
func buildScheme(req CreateSchemeRequest) *domain.Scheme {
	scheme := &domain.Scheme{
		Name: req.Name,
		Criteria: &domain.Criteria{
			EmploymentStatus: req.Criteria.EmploymentStatus,
		},
	}

	if req.Criteria.HasChildren != nil {
		scheme.Criteria.ChildrenRequired = true
		scheme.Criteria.SchoolLevel = req.Criteria.HasChildren.SchoolLevel
	}

	for _, b := range req.Benefits {
		scheme.Benefits = append(scheme.Benefits, domain.Benefit{
			Name:   b.Name,
			Amount: *b.Amount,
		})
	}

	return scheme
}
