package service

import "errors"

// Common service errors
var (
	// ErrNoMatchingApplicant indicates an application referenced an
	// applicant that could not be resolved by exact name and date of birth
	// match. The applicant must be registered first; this is a hard
	// precondition, not a retryable error.
	ErrNoMatchingApplicant = errors.New("no matching applicant found")
)
