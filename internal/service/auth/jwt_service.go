package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given
	// administrator. The token carries the admin's ID, username and role.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, adminID uuid.UUID, username, role string) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns the claims if the token is valid, or an error if
	// validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// AdminID is the unique identifier of the administrator the token was
	// issued for.
	AdminID uuid.UUID `json:"uid,omitempty"`

	// Username is the administrator's login name.
	Username string `json:"username,omitempty"`

	// Role is the capability the token grants ("admin").
	Role string `json:"role,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
