package jsonstore

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required key is absent from an
	// applicant record. It is always wrapped by a *MissingFieldError.
	ErrMissingField = errors.New("missing field")

	// ErrMalformedDocument is returned when the document is not valid JSON or
	// does not have the expected shape.
	ErrMalformedDocument = errors.New("malformed applicant document")

	// ErrNoData is returned by FileStorage when the data file does not exist yet.
	ErrNoData = errors.New("data file does not exist")
)

// MissingFieldError names the required key that was absent from a record.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface for MissingFieldError.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("applicant's %s field is missing", e.Field)
}

// Unwrap returns ErrMissingField so callers can use errors.Is.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// RecordError reports which record of a document failed to load.
type RecordError struct {
	// Index is the zero-based position of the record in the applicants array
	Index int
	Err   error
}

// Error implements the error interface for RecordError.
func (e *RecordError) Error() string {
	return fmt.Sprintf("applicant record %d: %v", e.Index+1, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RecordError) Unwrap() error {
	return e.Err
}
