package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/trackascholar/internal/domain"
)

var (
	// ErrParse is returned when a command argument cannot be parsed.
	// It is always wrapped by a *ParseError.
	ErrParse = errors.New("invalid command argument")

	// ErrConfirmationRequired is returned when a destructive command is sent
	// without explicit confirmation.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// Messages reported by the argument parsers.
const (
	MessageInvalidIndex   = "Index is not a non-zero unsigned integer."
	MessageInvalidStatus  = "Status keyword should be one of the following: pending, accepted, rejected"
	MessageInvalidSortKey = "Sort key should be one of the following: name, scholarship, status"
)

// ConfirmationValue is the value of the confirm query parameter that allows
// clearing the registry.
const ConfirmationValue = "yes"

// ParseError reports an argument that could not be parsed.
type ParseError struct {
	Argument string
	Message  string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Argument, e.Message)
}

// Unwrap returns ErrParse so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// ParseIndex parses a one-based index. Leading and trailing whitespace is ignored.
func ParseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || index < 1 {
		return 0, &ParseError{Argument: "index", Message: MessageInvalidIndex}
	}
	return index, nil
}

// ParseStatusKeyword trims and lower-cases raw and checks that it names an
// application status before building the filter predicate.
func ParseStatusKeyword(raw string) (domain.ApplicationStatusPredicate, error) {
	keyword := strings.ToLower(strings.TrimSpace(raw))
	if !domain.IsValidApplicationStatus(keyword) {
		return domain.ApplicationStatusPredicate{}, &ParseError{
			Argument: "status",
			Message:  MessageInvalidStatus,
		}
	}
	return domain.NewApplicationStatusPredicate(keyword), nil
}

// ParseSortKey maps a sort key to its comparator, ignoring case.
func ParseSortKey(raw string) (domain.Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "name":
		return domain.SortByName(), nil
	case "scholarship":
		return domain.SortByScholarship(), nil
	case "status":
		return domain.SortByStatus(), nil
	default:
		return nil, &ParseError{Argument: "sort key", Message: MessageInvalidSortKey}
	}
}

// CheckConfirmation returns ErrConfirmationRequired unless raw is ConfirmationValue.
func CheckConfirmation(raw string) error {
	if strings.TrimSpace(raw) != ConfirmationValue {
		return ErrConfirmationRequired
	}
	return nil
}
