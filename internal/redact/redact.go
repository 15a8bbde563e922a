// Package redact removes applicant contact details and environment details
// from strings before they are logged or returned in error responses.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPhonePlaceholder = "[REDACTED_PHONE]"
)

// rule pairs a pattern with its replacement. Rules are applied in order.
type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var rules = []rule{
	// Stack trace fragments
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},

	// File paths
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},

	// Email addresses, before phones so digits inside an address are not split off
	{regexp.MustCompile(`[A-Za-z0-9+_.-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*`), RedactedEmailPlaceholder},

	// Phone numbers: any run of three or more digits
	{regexp.MustCompile(`\b\d{3,}\b`), RedactedPhonePlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
