package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrApplicantNotFound, ErrSchemeNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., an administrator with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or violates a database constraint (e.g., a household
	// member referencing a missing applicant).
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrAdminNotFound indicates that the requested administrator does not exist.
	ErrAdminNotFound = fmt.Errorf("%w: administrator", ErrNotFound)

	// ErrApplicantNotFound indicates that the requested applicant does not exist.
	ErrApplicantNotFound = fmt.Errorf("%w: applicant", ErrNotFound)

	// ErrSchemeNotFound indicates that the requested scheme does not exist.
	ErrSchemeNotFound = fmt.Errorf("%w: scheme", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUsernameExists indicates that an administrator with the given
	// username already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
