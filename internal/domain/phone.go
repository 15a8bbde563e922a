package domain

import "regexp"

// PhoneConstraints describes the rule enforced by NewPhone.
const PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

var phoneRegex = regexp.MustCompile(`^[0-9]{3,}$`)

// Phone is an applicant's phone number.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, NewInvalidFieldError("phone", PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

// IsValidPhone reports whether raw is a valid phone number.
func IsValidPhone(raw string) bool {
	return phoneRegex.MatchString(raw)
}

func (p Phone) String() string {
	return p.value
}
