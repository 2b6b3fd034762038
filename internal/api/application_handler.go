package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/schemesvc/fas-api/internal/api/shared"
	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/service"
)

// ApplicationHandler handles scheme application submissions and listings.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// List handles GET /api/applications.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	applications, err := h.applicationService.ListApplications(r.Context())
	if err != nil {
		slog.Error("failed to list applications", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list applications")
		return
	}

	if len(applications) == 0 {
		shared.RespondWithJSON(w, r, http.StatusNotFound, MessageResponse{Message: "No applications found."})
		return
	}

	resp := make([]ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		resp = append(resp, toApplicationResponse(a))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Submit handles POST /api/applications. The scheme name is checked against
// the known set before any applicant lookup occurs.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitApplicationRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if !domain.IsKnownSchemeName(req.SchemeApplied) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Invalid scheme_applied value. Must be one of: "+strings.Join(domain.KnownSchemeNames(), ", "))
		return
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid date_of_birth format")
		return
	}

	application, err := h.applicationService.Submit(r.Context(), service.SubmitApplicationRequest{
		Name:          req.Name,
		DateOfBirth:   dob,
		SchemeApplied: req.SchemeApplied,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoMatchingApplicant):
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"No matching applicant found. Please register the applicant first with /api/applicants.")
		case errors.Is(err, domain.ErrUnknownScheme):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown scheme: "+req.SchemeApplied)
		default:
			slog.Error("failed to submit application", "error", err, "name", req.Name)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to submit application")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		MessageResponse
		Application ApplicationResponse `json:"application"`
	}{
		MessageResponse: MessageResponse{Message: "Application inserted successfully"},
		Application:     toApplicationResponse(*application),
	})
}
