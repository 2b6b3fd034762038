package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemesvc/fas-api/internal/config"
)

func testJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-key-thats-long-enough-for-hmac",
		TokenLifetimeMinutes: 60,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(testJWTConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("secret too short", func(t *testing.T) {
		t.Parallel()

		cfg := testJWTConfig()
		cfg.JWTSecret = "too-short"

		svc, err := NewJWTService(cfg)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	adminID := uuid.New()
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, adminID, "scheme-admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "scheme-admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, adminID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	ctx := context.Background()

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(testJWTConfig())
		require.NoError(t, err)

		claims, err := svc.ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(testJWTConfig())
		require.NoError(t, err)

		otherCfg := testJWTConfig()
		otherCfg.JWTSecret = "another-secret-key-thats-also-long-enough"
		other, err := NewJWTService(otherCfg)
		require.NoError(t, err)

		token, err := other.GenerateToken(ctx, adminID, "scheme-admin", "admin")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(testJWTConfig())
		require.NoError(t, err)

		impl, ok := svc.(*hmacJWTService)
		require.True(t, ok)

		// Issue a token far enough in the past that lifetime plus clock
		// skew has elapsed.
		issued := time.Now().Add(-2 * time.Hour)
		impl.timeFunc = func() time.Time { return issued }
		token, err := svc.GenerateToken(ctx, adminID, "scheme-admin", "admin")
		require.NoError(t, err)

		impl.timeFunc = time.Now
		claims, err := svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Nil(t, claims)
	})
}
