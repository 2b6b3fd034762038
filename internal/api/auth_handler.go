package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/schemesvc/fas-api/internal/api/shared"
	"github.com/schemesvc/fas-api/internal/config"
	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/service/auth"
	"github.com/schemesvc/fas-api/internal/store"
)

// AuthHandler handles administrator authentication requests.
type AuthHandler struct {
	adminStore       store.AdminStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	authConfig       config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	adminStore store.AdminStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	authConfig config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		adminStore:       adminStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		authConfig:       authConfig,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	admin, err := domain.NewAdmin(req.Username, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid administrator data: "+err.Error())
		return
	}

	if err := h.adminStore.Create(r.Context(), admin); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		slog.Error("failed to create administrator", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create administrator")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), admin.ID, admin.Username, domain.RoleAdmin)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "admin_id", admin.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		AdminID:     admin.ID,
		Username:    admin.Username,
		AccessToken: token,
		ExpiresAt:   h.tokenExpiry().Format(time.RFC3339),
	})
}

// Login handles POST /api/auth/login.
//
// Unknown usernames and wrong passwords are reported differently: the
// legacy behavior points unregistered administrators at the registration
// endpoint instead of returning a generic credentials error.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	admin, err := h.adminStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found. Please register.")
			return
		}
		slog.Error("failed to get administrator", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate administrator")
		return
	}

	if err := h.passwordVerifier.Compare(admin.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), admin.ID, admin.Username, domain.RoleAdmin)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "admin_id", admin.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		AdminID:     admin.ID,
		Username:    admin.Username,
		AccessToken: token,
		ExpiresAt:   h.tokenExpiry().Format(time.RFC3339),
	})
}

func (h *AuthHandler) tokenExpiry() time.Time {
	return time.Now().UTC().Add(time.Duration(h.authConfig.TokenLifetimeMinutes) * time.Minute)
}
