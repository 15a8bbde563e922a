package domain

import (
	"regexp"
	"slices"
	"strings"
)

// MajorConstraints describes the rules enforced by NewMajor and by the
// major set of an Applicant.
const MajorConstraints = "Majors should only contain alphanumeric characters and spaces, " +
	"and adhere to the following constraints:\n" +
	"1. Major should not be empty\n" +
	"2. An applicant can only take up at most 2 Majors"

// MaxMajors is the largest number of distinct majors an applicant may hold.
const MaxMajors = 2

var majorRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// Major is a field of study taken by an applicant.
type Major struct {
	value string
}

// NewMajor validates raw and returns it as a Major.
func NewMajor(raw string) (Major, error) {
	if !IsValidMajor(raw) {
		return Major{}, NewInvalidFieldError("major", MajorConstraints)
	}
	return Major{value: raw}, nil
}

// IsValidMajor reports whether raw is a valid major name.
func IsValidMajor(raw string) bool {
	return majorRegex.MatchString(raw)
}

func (m Major) String() string {
	return m.value
}

// NewMajors builds the major set of an applicant from raw names. Duplicate
// names collapse into one entry; more than MaxMajors distinct names is an error.
func NewMajors(raw ...string) ([]Major, error) {
	majors := make([]Major, 0, len(raw))
	for _, r := range raw {
		m, err := NewMajor(r)
		if err != nil {
			return nil, err
		}
		majors = append(majors, m)
	}
	return normalizeMajors(majors)
}

// normalizeMajors deduplicates and sorts majors so that two applicants holding
// the same set compare equal regardless of input order.
func normalizeMajors(majors []Major) ([]Major, error) {
	set := slices.Clone(majors)
	slices.SortFunc(set, func(a, b Major) int {
		return strings.Compare(a.value, b.value)
	})
	set = slices.Compact(set)
	if len(set) > MaxMajors {
		return nil, NewInvalidFieldError("major", MajorConstraints)
	}
	return set, nil
}
