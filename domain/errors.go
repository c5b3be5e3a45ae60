package domain

import (
	"errors"
	"fmt"
)

// ErrCustomerNotFound means the directory has no profile for the identifier.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrKYCNotVerified means a profile exists but KYC has not been completed.
var ErrKYCNotVerified = errors.New("customer KYC is not verified")

// ValidationError reports a malformed or out-of-range input field. It is
// raised before any policy logic runs.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
