package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyAdminID        = errors.New("administrator ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 64 characters long")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// RoleAdmin is the only role issued by the system today. Every registered
// administrator receives it, and protected routes require it.
const RoleAdmin = "admin"

// Admin represents an administrator account that can manage applicants,
// schemes and applications.
type Admin struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAdmin creates a new Admin with the given username and password.
// It generates a new UUID for the admin ID and sets the creation/update
// timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the admin structure with the plaintext
// password. The caller is responsible for hashing the password before storage.
func NewAdmin(username, password string) (*Admin, error) {
	admin := &Admin{
		ID:        uuid.New(),
		Username:  username,
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := admin.Validate(); err != nil {
		return nil, err
	}

	return admin, nil
}

// Validate checks if the Admin has valid data.
// Returns an error if any field fails validation.
func (a *Admin) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAdminID
	}

	if a.Username == "" {
		return ErrEmptyUsername
	}

	if len(a.Username) > 64 {
		return ErrUsernameTooLong
	}

	// During registration we validate the provided plaintext password.
	// Existing admins loaded from the store carry only the hash.
	if a.Password != "" {
		if len(a.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt's practical input limit
		if len(a.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if a.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
