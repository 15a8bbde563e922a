package testutils

import (
	"testing"

	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/store"
	"github.com/stretchr/testify/require"
)

// Default field values used by MustCreateApplicantForTest.
const (
	DefaultName        = "Amy Bee"
	DefaultPhone       = "85355255"
	DefaultEmail       = "amy@gmail.com"
	DefaultScholarship = "NUS Merit Scholarship"
	DefaultStatus      = "pending"
)

// ApplicantOption customizes the raw fields of a test applicant.
type ApplicantOption func(*applicantOptions)

type applicantOptions struct {
	fields domain.ApplicantFields
	pinned bool
}

// WithName sets the applicant's name.
func WithName(name string) ApplicantOption {
	return func(s *applicantOptions) { s.fields.Name = name }
}

// WithPhone sets the applicant's phone number.
func WithPhone(phone string) ApplicantOption {
	return func(s *applicantOptions) { s.fields.Phone = phone }
}

// WithEmail sets the applicant's email.
func WithEmail(email string) ApplicantOption {
	return func(s *applicantOptions) { s.fields.Email = email }
}

// WithScholarship sets the applicant's scholarship.
func WithScholarship(scholarship string) ApplicantOption {
	return func(s *applicantOptions) { s.fields.Scholarship = scholarship }
}

// WithStatus sets the applicant's application status.
func WithStatus(status string) ApplicantOption {
	return func(s *applicantOptions) { s.fields.ApplicationStatus = status }
}

// WithMajors replaces the applicant's majors.
func WithMajors(majors ...string) ApplicantOption {
	return func(s *applicantOptions) { s.fields.Majors = majors }
}

// WithPinned marks the applicant as pinned.
func WithPinned() ApplicantOption {
	return func(s *applicantOptions) { s.pinned = true }
}

// MustCreateApplicantForTest builds a valid applicant from the default field
// values, overridden by opts. The test fails if the result is invalid.
func MustCreateApplicantForTest(t *testing.T, opts ...ApplicantOption) *domain.Applicant {
	t.Helper()

	o := applicantOptions{
		fields: domain.ApplicantFields{
			Name:              DefaultName,
			Phone:             DefaultPhone,
			Email:             DefaultEmail,
			Scholarship:       DefaultScholarship,
			ApplicationStatus: DefaultStatus,
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	a, err := domain.NewApplicantFromFields(o.fields)
	require.NoError(t, err, "Failed to create test applicant")
	if o.pinned {
		a = a.WithPinned(true)
	}
	return a
}

// TypicalApplicants returns five applicants in insertion order. Their names
// sort Alice < Benson < Carl < Daniel < Elle; Alice and Elle share the Arts
// scholarship.
func TypicalApplicants(t *testing.T) []*domain.Applicant {
	t.Helper()

	return []*domain.Applicant{
		MustCreateApplicantForTest(t,
			WithName("Alice Pauline"), WithPhone("94351253"), WithEmail("alice@example.com"),
			WithScholarship("Arts"), WithStatus("accepted"), WithMajors("Mathematics")),
		MustCreateApplicantForTest(t,
			WithName("Benson Meier"), WithPhone("98765432"), WithEmail("johnd@example.com"),
			WithScholarship("Music"), WithStatus("pending"), WithMajors("Music", "Physics")),
		MustCreateApplicantForTest(t,
			WithName("Carl Kurz"), WithPhone("95352563"), WithEmail("heinz@example.com"),
			WithScholarship("Arts and Sciences"), WithStatus("rejected")),
		MustCreateApplicantForTest(t,
			WithName("Daniel Meier"), WithPhone("87652533"), WithEmail("cornelia@example.com"),
			WithScholarship("Sports"), WithStatus("pending"), WithMajors("Sports Science")),
		MustCreateApplicantForTest(t,
			WithName("Elle Meyer"), WithPhone("9482224"), WithEmail("werner@example.com"),
			WithScholarship("Arts"), WithStatus("accepted")),
	}
}

// NewTypicalRegistry returns a registry holding TypicalApplicants.
func NewTypicalRegistry(t *testing.T) *store.Registry {
	t.Helper()

	r := store.NewRegistry()
	for _, a := range TypicalApplicants(t) {
		require.NoError(t, r.Add(a), "Failed to add typical applicant")
	}
	return r
}

// Names returns the names of applicants in order.
func Names(applicants []*domain.Applicant) []string {
	names := make([]string, len(applicants))
	for i, a := range applicants {
		names[i] = a.Name().String()
	}
	return names
}
