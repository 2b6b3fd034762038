package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/schemesvc/fas-api/internal/mocks"
	"github.com/schemesvc/fas-api/internal/service/auth"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	adminClaims := &auth.Claims{
		AdminID:  uuid.New(),
		Username: "scheme-admin",
		Role:     "admin",
	}

	tests := []struct {
		name        string
		authHeader  string
		validateErr error
		wantStatus  int
		wantNext    bool
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer valid-token",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bad-token",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{Claims: adminClaims, ValidateErr: tt.validateErr}
			m := NewAuthMiddleware(jwtService)

			nextCalled := false
			handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims, ok := GetClaims(r)
				assert.True(t, ok, "claims must be in context after authentication")
				assert.Equal(t, adminClaims, claims)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest("GET", "/api/applicants", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(&mocks.MockJWTService{})

	t.Run("matching role passes", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{Role: "admin"}}
		authed := NewAuthMiddleware(jwtService)

		called := false
		handler := authed.Authenticate(authed.RequireRole("admin")(okHandler(&called)))

		req := httptest.NewRequest("GET", "/api/schemes", nil)
		req.Header.Set("Authorization", "Bearer token")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, called)
	})

	t.Run("wrong role rejected", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{Role: "viewer"}}
		authed := NewAuthMiddleware(jwtService)

		called := false
		handler := authed.Authenticate(authed.RequireRole("admin")(okHandler(&called)))

		req := httptest.NewRequest("GET", "/api/schemes", nil)
		req.Header.Set("Authorization", "Bearer token")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.False(t, called)
	})

	t.Run("no claims in context rejected", func(t *testing.T) {
		t.Parallel()

		called := false
		handler := m.RequireRole("admin")(okHandler(&called))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/schemes", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, called)
	})
}
