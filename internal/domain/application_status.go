package domain

import (
	"cmp"
	"strings"
)

// ApplicationStatusConstraints describes the rule enforced by NewApplicationStatus.
const ApplicationStatusConstraints = "Application status should only be one of the following: pending, accepted, rejected"

// Raw application status values, in display order.
const (
	StatusPendingValue  = "pending"
	StatusAcceptedValue = "accepted"
	StatusRejectedValue = "rejected"
)

// statusRanks fixes the ordering pending < accepted < rejected.
var statusRanks = map[string]int{
	StatusPendingValue:  0,
	StatusAcceptedValue: 1,
	StatusRejectedValue: 2,
}

// Predefined application statuses.
var (
	StatusPending  = ApplicationStatus{value: StatusPendingValue}
	StatusAccepted = ApplicationStatus{value: StatusAcceptedValue}
	StatusRejected = ApplicationStatus{value: StatusRejectedValue}
)

// ApplicationStatus represents where an applicant is in the review process.
// The stored value is always lower case.
type ApplicationStatus struct {
	value string
}

// NewApplicationStatus lower-cases raw and returns it as an ApplicationStatus.
// Returns an error if raw is not one of pending, accepted or rejected.
func NewApplicationStatus(raw string) (ApplicationStatus, error) {
	if !IsValidApplicationStatus(raw) {
		return ApplicationStatus{}, NewInvalidFieldError("application status", ApplicationStatusConstraints)
	}
	return ApplicationStatus{value: strings.ToLower(raw)}, nil
}

// IsValidApplicationStatus reports whether raw names a known status,
// ignoring case.
func IsValidApplicationStatus(raw string) bool {
	_, ok := statusRanks[strings.ToLower(raw)]
	return ok
}

func (s ApplicationStatus) String() string {
	return s.value
}

// Compare orders statuses by rank: pending, then accepted, then rejected.
func (s ApplicationStatus) Compare(other ApplicationStatus) int {
	return cmp.Compare(statusRanks[s.value], statusRanks[other.value])
}
