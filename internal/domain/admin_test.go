package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemesvc/fas-api/internal/domain"
)

func TestNewAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid admin",
			username: "scheme-admin",
			password: "password1234567",
			wantErr:  nil,
		},
		{
			name:     "empty username",
			username: "",
			password: "password1234567",
			wantErr:  domain.ErrEmptyUsername,
		},
		{
			name:     "username too long",
			username: strings.Repeat("a", 65),
			password: "password1234567",
			wantErr:  domain.ErrUsernameTooLong,
		},
		{
			name:     "password too short",
			username: "scheme-admin",
			password: "short",
			wantErr:  domain.ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			username: "scheme-admin",
			password: strings.Repeat("p", 73),
			wantErr:  domain.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			admin, err := domain.NewAdmin(tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, admin)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, admin.ID)
			assert.Equal(t, tt.username, admin.Username)
			assert.Equal(t, tt.password, admin.Password)
			assert.False(t, admin.CreatedAt.IsZero())
		})
	}
}
