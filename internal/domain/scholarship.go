package domain

import (
	"regexp"
	"strings"
)

// ScholarshipConstraints describes the rule enforced by NewScholarship.
const ScholarshipConstraints = "Scholarship can take any values, and it should not be blank"

// The first character must not be whitespace, otherwise " " would be valid.
var scholarshipRegex = regexp.MustCompile(`^[^\s].*$`)

// Scholarship is the name of the scholarship an applicant applied for.
type Scholarship struct {
	value string
}

// NewScholarship validates raw and returns it as a Scholarship.
func NewScholarship(raw string) (Scholarship, error) {
	if !IsValidScholarship(raw) {
		return Scholarship{}, NewInvalidFieldError("scholarship", ScholarshipConstraints)
	}
	return Scholarship{value: raw}, nil
}

// IsValidScholarship reports whether raw is a valid scholarship name.
func IsValidScholarship(raw string) bool {
	return scholarshipRegex.MatchString(raw)
}

func (s Scholarship) String() string {
	return s.value
}

// Compare orders scholarships lexicographically and case-sensitively.
func (s Scholarship) Compare(other Scholarship) int {
	return strings.Compare(s.value, other.value)
}
