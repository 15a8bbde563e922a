package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrInvalidField is returned when a raw value fails a field type's
	// validation rule. It is always wrapped by an *InvalidFieldError that
	// carries the field's constraint message.
	ErrInvalidField = errors.New("invalid field")

	// ErrNilApplicant is returned when an operation requires an applicant
	// but received nil.
	ErrNilApplicant = errors.New("applicant cannot be nil")
)

// InvalidFieldError reports that a raw value could not be turned into a field
// value. Message is the fixed, user-facing constraint description of the field.
type InvalidFieldError struct {
	Field   string
	Message string
}

// Error implements the error interface for InvalidFieldError.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalidField so callers can use errors.Is.
func (e *InvalidFieldError) Unwrap() error {
	return ErrInvalidField
}

// NewInvalidFieldError creates a new InvalidFieldError for the given field.
func NewInvalidFieldError(field, message string) *InvalidFieldError {
	return &InvalidFieldError{
		Field:   field,
		Message: message,
	}
}
