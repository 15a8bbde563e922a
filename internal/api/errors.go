package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/trackascholar/internal/api/shared"
	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/platform/jsonstore"
	"github.com/phrazzld/trackascholar/internal/service"
	"github.com/phrazzld/trackascholar/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrInvalidIndex),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, ErrConfirmationRequired):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidField),
		errors.Is(err, ErrParse),
		errors.Is(err, service.ErrNothingToEdit),
		errors.Is(err, jsonstore.ErrMissingField),
		errors.Is(err, jsonstore.ErrMalformedDocument),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, shared.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
//
// Field and argument errors carry fixed constraint messages and are returned
// verbatim; they never echo the rejected value.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var fieldErr *domain.InvalidFieldError
	var missingErr *jsonstore.MissingFieldError
	var parseErr *ParseError
	var recordErr *jsonstore.RecordError

	prefix := ""
	if errors.As(err, &recordErr) {
		prefix = fmt.Sprintf("Applicant record %d: ", recordErr.Index+1)
	}

	switch {
	case errors.As(err, &fieldErr):
		return prefix + fieldErr.Message

	case errors.As(err, &missingErr):
		return prefix + missingErr.Error()

	case errors.As(err, &parseErr):
		return parseErr.Message

	case errors.Is(err, store.ErrDuplicateApplicant):
		return prefix + "This applicant already exists"

	case errors.Is(err, service.ErrInvalidIndex):
		return "The applicant index provided is invalid"

	case errors.Is(err, store.ErrApplicantNotFound):
		return "Applicant not found"

	case errors.Is(err, service.ErrNothingToEdit):
		return "At least one field to edit must be provided"

	case errors.Is(err, ErrConfirmationRequired):
		return "Clearing the registry requires confirm=" + ConfirmationValue

	case errors.Is(err, jsonstore.ErrMalformedDocument):
		return "Invalid applicant document"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, shared.ErrBodyTooLarge):
		return fmt.Sprintf("Request body must not exceed %d bytes", shared.MaxBodyBytes)

	case errors.Is(err, service.ErrSaveFailed):
		return "Could not save data to file"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'CreateApplicantRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too many values"
	default:
		return "validation failed"
	}
}
