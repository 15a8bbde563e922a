package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// PinnedFlagName is the field name of the flag marking an applicant as pinned.
const PinnedFlagName = "pinned"

// ApplicantFields holds the raw, unvalidated values of an applicant as they
// arrive from a request or a stored document.
type ApplicantFields struct {
	Name              string
	Phone             string
	Email             string
	Scholarship       string
	ApplicationStatus string
	Majors            []string
}

// Applicant represents a single scholarship candidate. All fields are
// validated on construction and an Applicant is never modified afterwards;
// the With* methods return a new Applicant.
type Applicant struct {
	name        Name
	phone       Phone
	email       Email
	scholarship Scholarship
	status      ApplicationStatus
	majors      []Major
	pinned      Flag
}

// NewApplicant creates an unpinned Applicant from already validated fields.
// Returns an error if any field is a zero value or the major set is too large.
func NewApplicant(
	name Name,
	phone Phone,
	email Email,
	scholarship Scholarship,
	status ApplicationStatus,
	majors []Major,
) (*Applicant, error) {
	set, err := normalizeMajors(majors)
	if err != nil {
		return nil, err
	}

	applicant := &Applicant{
		name:        name,
		phone:       phone,
		email:       email,
		scholarship: scholarship,
		status:      status,
		majors:      set,
		pinned:      NewFlag(PinnedFlagName, false),
	}

	if err := applicant.Validate(); err != nil {
		return nil, err
	}

	return applicant, nil
}

// NewApplicantFromFields validates raw field values in declaration order and
// builds an unpinned Applicant. The first failing field is reported.
func NewApplicantFromFields(f ApplicantFields) (*Applicant, error) {
	name, err := NewName(f.Name)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhone(f.Phone)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(f.Email)
	if err != nil {
		return nil, err
	}
	scholarship, err := NewScholarship(f.Scholarship)
	if err != nil {
		return nil, err
	}
	status, err := NewApplicationStatus(f.ApplicationStatus)
	if err != nil {
		return nil, err
	}
	majors, err := NewMajors(f.Majors...)
	if err != nil {
		return nil, err
	}
	return NewApplicant(name, phone, email, scholarship, status, majors)
}

// Validate checks that every field holds a constructed value.
// This catches zero-value fields passed in by callers that skipped the
// field constructors.
func (a *Applicant) Validate() error {
	switch {
	case !IsValidName(a.name.value):
		return NewInvalidFieldError("name", NameConstraints)
	case !IsValidPhone(a.phone.value):
		return NewInvalidFieldError("phone", PhoneConstraints)
	case !IsValidEmail(a.email.value):
		return NewInvalidFieldError("email", EmailConstraints)
	case !IsValidScholarship(a.scholarship.value):
		return NewInvalidFieldError("scholarship", ScholarshipConstraints)
	case !IsValidApplicationStatus(a.status.value):
		return NewInvalidFieldError("application status", ApplicationStatusConstraints)
	}
	for _, m := range a.majors {
		if !IsValidMajor(m.value) {
			return NewInvalidFieldError("major", MajorConstraints)
		}
	}
	return nil
}

func (a *Applicant) Name() Name                           { return a.name }
func (a *Applicant) Phone() Phone                         { return a.phone }
func (a *Applicant) Email() Email                         { return a.email }
func (a *Applicant) Scholarship() Scholarship             { return a.scholarship }
func (a *Applicant) ApplicationStatus() ApplicationStatus { return a.status }
func (a *Applicant) Pinned() Flag                         { return a.pinned }
func (a *Applicant) IsPinned() bool                       { return a.pinned.IsSet() }

// Majors returns a copy of the applicant's major set, sorted by name.
func (a *Applicant) Majors() []Major {
	return slices.Clone(a.majors)
}

func (a *Applicant) clone() *Applicant {
	c := *a
	c.majors = slices.Clone(a.majors)
	return &c
}

// WithName returns a copy of the applicant with a different name. The copy
// is a different applicant as far as IsSameApplicant is concerned.
func (a *Applicant) WithName(name Name) *Applicant {
	c := a.clone()
	c.name = name
	return c
}

func (a *Applicant) WithPhone(phone Phone) *Applicant {
	c := a.clone()
	c.phone = phone
	return c
}

func (a *Applicant) WithEmail(email Email) *Applicant {
	c := a.clone()
	c.email = email
	return c
}

func (a *Applicant) WithScholarship(scholarship Scholarship) *Applicant {
	c := a.clone()
	c.scholarship = scholarship
	return c
}

func (a *Applicant) WithApplicationStatus(status ApplicationStatus) *Applicant {
	c := a.clone()
	c.status = status
	return c
}

// WithMajors returns a copy of the applicant holding the given major set.
// Returns an error if the set has more than MaxMajors distinct majors.
func (a *Applicant) WithMajors(majors []Major) (*Applicant, error) {
	set, err := normalizeMajors(majors)
	if err != nil {
		return nil, err
	}
	c := a.clone()
	c.majors = set
	return c, nil
}

// WithPinned returns a copy of the applicant with the pinned flag set to pinned.
func (a *Applicant) WithPinned(pinned bool) *Applicant {
	c := a.clone()
	c.pinned = NewFlag(PinnedFlagName, pinned)
	return c
}

// IsSameApplicant reports whether other has exactly the same name.
// This is the identity used to keep applicants unique and is weaker than Equal.
func (a *Applicant) IsSameApplicant(other *Applicant) bool {
	if other == a {
		return true
	}
	return other != nil && a.name.Compare(other.name) == 0
}

// IsMatchingStatus reports whether the applicant has the given status.
func (a *Applicant) IsMatchingStatus(status *ApplicationStatus) bool {
	return status != nil && *status == a.status
}

// Equal reports whether other has the same value in every field, including
// the major set and the pinned flag.
func (a *Applicant) Equal(other *Applicant) bool {
	if other == a {
		return true
	}
	if other == nil {
		return false
	}
	return a.name == other.name &&
		a.phone == other.phone &&
		a.email == other.email &&
		a.scholarship == other.scholarship &&
		a.status == other.status &&
		slices.Equal(a.majors, other.majors) &&
		a.pinned == other.pinned
}

// Hash returns a hash of every field. Applicants that are Equal hash equally.
func (a *Applicant) Hash() uint64 {
	d := xxhash.New()
	for _, s := range a.fieldValues() {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func (a *Applicant) fieldValues() []string {
	values := []string{
		a.name.value,
		a.phone.value,
		a.email.value,
		a.scholarship.value,
		a.status.value,
		a.pinned.String(),
	}
	for _, m := range a.majors {
		values = append(values, m.value)
	}
	return values
}

func (a *Applicant) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Scholarship: %s; Application Status: %s",
		a.name, a.phone, a.email, a.scholarship, a.status)
	if len(a.majors) > 0 {
		b.WriteString("; Majors: ")
		for _, m := range a.majors {
			fmt.Fprintf(&b, "[%s]", m)
		}
	}
	return b.String()
}

// Comparator orders two applicants. It returns a negative number when a sorts
// before b, zero when they tie and a positive number otherwise.
type Comparator func(a, b *Applicant) int

// SortByName orders applicants by name. Names are unique within a registry,
// so no tiebreaker is needed.
func SortByName() Comparator {
	return func(a, b *Applicant) int {
		return a.name.Compare(b.name)
	}
}

// SortByScholarship orders applicants by scholarship, then by name.
func SortByScholarship() Comparator {
	return func(a, b *Applicant) int {
		if c := a.scholarship.Compare(b.scholarship); c != 0 {
			return c
		}
		return a.name.Compare(b.name)
	}
}

// SortByStatus puts pending applicants first, then accepted, then rejected,
// ordering by name within each status.
func SortByStatus() Comparator {
	return func(a, b *Applicant) int {
		if c := a.status.Compare(b.status); c != 0 {
			return c
		}
		return a.name.Compare(b.name)
	}
}
