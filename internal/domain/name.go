package domain

import (
	"regexp"
	"strings"
)

// NameConstraints describes the rule enforced by NewName.
const NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

// The first character must not be a space, otherwise " " would be a valid name.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// Name is an applicant's full name. It is the identity field of an Applicant.
type Name struct {
	value string
}

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, NewInvalidFieldError("name", NameConstraints)
	}
	return Name{value: raw}, nil
}

// IsValidName reports whether raw is a valid name.
func IsValidName(raw string) bool {
	return nameRegex.MatchString(raw)
}

// String returns the name verbatim.
func (n Name) String() string {
	return n.value
}

// Compare orders names lexicographically and case-sensitively.
func (n Name) Compare(other Name) int {
	return strings.Compare(n.value, other.value)
}
