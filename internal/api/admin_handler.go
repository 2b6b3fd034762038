package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/schemesvc/fas-api/internal/api/shared"
	"github.com/schemesvc/fas-api/internal/store"
)

// AdminHandler handles administrator management requests.
type AdminHandler struct {
	adminStore store.AdminStore
}

// NewAdminHandler creates a new AdminHandler with the given dependencies.
func NewAdminHandler(adminStore store.AdminStore) *AdminHandler {
	return &AdminHandler{adminStore: adminStore}
}

// List handles GET /api/administrators.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminStore.List(r.Context())
	if err != nil {
		slog.Error("failed to list administrators", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list administrators")
		return
	}

	if len(admins) == 0 {
		shared.RespondWithJSON(w, r, http.StatusNotFound, MessageResponse{Message: "No administrators found."})
		return
	}

	resp := make([]AdminResponse, 0, len(admins))
	for _, a := range admins {
		resp = append(resp, AdminResponse{
			ID:        a.ID,
			Username:  a.Username,
			CreatedAt: a.CreatedAt,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /api/administrators/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid administrator ID")
		return
	}

	if err := h.adminStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Administrator not found")
			return
		}
		slog.Error("failed to delete administrator", "error", err, "admin_id", id)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete administrator")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Administrator deleted successfully"})
}
