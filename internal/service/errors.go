package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidIndex indicates that an index does not refer to an applicant
	// in the current listing.
	// API layer should map this to HTTP 404 Not Found.
	ErrInvalidIndex = errors.New("the applicant index provided is invalid")

	// ErrNothingToEdit indicates that an edit request named no field to change.
	// API layer should map this to HTTP 400 Bad Request.
	ErrNothingToEdit = errors.New("at least one field to edit must be provided")

	// ErrSaveFailed indicates that the registry was changed in memory but the
	// change could not be persisted.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrSaveFailed = errors.New("could not save data to file")
)

// ApplicantServiceError wraps errors from the applicant service with context.
type ApplicantServiceError struct {
	// Operation is the operation that failed (e.g., "add", "edit")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ApplicantServiceError.
func (e *ApplicantServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("applicant service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("applicant service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ApplicantServiceError) Unwrap() error {
	return e.Err
}

// NewApplicantServiceError creates a new ApplicantServiceError.
// It returns service sentinel errors directly without wrapping.
func NewApplicantServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrInvalidIndex) {
		return ErrInvalidIndex
	}
	if errors.Is(err, ErrNothingToEdit) {
		return ErrNothingToEdit
	}

	return &ApplicantServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// saveFailed marks err as a persistence failure.
func saveFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrSaveFailed, err)
}
