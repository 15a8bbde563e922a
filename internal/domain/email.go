package domain

import "regexp"

// EmailConstraints describes the rule enforced by NewEmail.
const EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
	"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
	"separated by periods.\n" +
	"The domain name must:\n" +
	"    - end with a domain label at least 2 characters long\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

const (
	emailLocalPart  = `[A-Za-z0-9]([+_.\-A-Za-z0-9]*[A-Za-z0-9])?`
	emailLabel      = `[A-Za-z0-9]([-A-Za-z0-9]*[A-Za-z0-9])?`
	emailFinalLabel = `[A-Za-z0-9][-A-Za-z0-9]*[A-Za-z0-9]`
)

var emailRegex = regexp.MustCompile(`^` + emailLocalPart + `@(` + emailLabel + `\.)*` + emailFinalLabel + `$`)

// Email is an applicant's email address.
type Email struct {
	value string
}

// NewEmail validates raw and returns it as an Email.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, NewInvalidFieldError("email", EmailConstraints)
	}
	return Email{value: raw}, nil
}

// IsValidEmail reports whether raw has the local-part@domain shape.
func IsValidEmail(raw string) bool {
	return emailRegex.MatchString(raw)
}

func (e Email) String() string {
	return e.value
}
