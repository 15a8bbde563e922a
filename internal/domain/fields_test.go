package domain_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldCase pairs a constructor with its pre-flight validator so that every
// field type can be checked for agreement between the two.
type fieldCase struct {
	name      string
	construct func(string) error
	isValid   func(string) bool
	valid     []string
	invalid   []string
}

func fieldCases() []fieldCase {
	return []fieldCase{
		{
			name:      "Name",
			construct: func(s string) error { _, err := domain.NewName(s); return err },
			isValid:   domain.IsValidName,
			valid:     []string{"peter jack", "12345", "peter the 2nd", "Capital Tan", "David Roger Jackson Ray Jr 2nd"},
			invalid:   []string{"", " ", "^", "peter*", " leading space"},
		},
		{
			name:      "Phone",
			construct: func(s string) error { _, err := domain.NewPhone(s); return err },
			isValid:   domain.IsValidPhone,
			valid:     []string{"911", "93121534", "124293842033123"},
			invalid:   []string{"", " ", "91", "phone", "9011p041", "9312 1534"},
		},
		{
			name:      "Email",
			construct: func(s string) error { _, err := domain.NewEmail(s); return err },
			isValid:   domain.IsValidEmail,
			valid: []string{
				"PeterJack_1190@example.com", "a@bc", "test@localhost", "123@145",
				"a1+be.d@example1.com", "peter_jack@very-very-very-long-example.com",
				"if.you.dream.it_you.can.do.it@example.com", "e1234567@u.nus.edu",
			},
			invalid: []string{
				"", " ", "@example.com", "peterjackexample.com", "peterjack@",
				"peterjack@-", "peterjack@exam_ple.com", "peter jack@example.com",
				"peterjack@exam ple.com", "-peterjack@example.com", "peterjack-@example.com",
				"peterjack@example.c", "peterjack@-example.com", "peterjack@example.com-",
				"peterjack@example@com",
			},
		},
		{
			name:      "Scholarship",
			construct: func(s string) error { _, err := domain.NewScholarship(s); return err },
			isValid:   domain.IsValidScholarship,
			valid:     []string{"Arts", "-", "NUS Global Merit Scholarship (Undergraduate) 2023"},
			invalid:   []string{"", " ", "\tArts"},
		},
		{
			name:      "ApplicationStatus",
			construct: func(s string) error { _, err := domain.NewApplicationStatus(s); return err },
			isValid:   domain.IsValidApplicationStatus,
			valid:     []string{"pending", "accepted", "rejected", "PENDING", "Accepted"},
			invalid:   []string{"", " ", "pending ", "approved", "reject"},
		},
		{
			name:      "Major",
			construct: func(s string) error { _, err := domain.NewMajor(s); return err },
			isValid:   domain.IsValidMajor,
			valid:     []string{"Mathematics", "Computer Science", "Year 2 Physics"},
			invalid:   []string{"", " ", "Math!", " Physics"},
		},
		{
			name:      "Flag",
			construct: func(s string) error { _, err := domain.ParseFlag("pinned", s); return err },
			isValid:   domain.IsValidFlag,
			valid:     []string{"true", "false", "TRUE"},
			invalid:   []string{"", "yes", "1"},
		},
	}
}

func TestFieldValidationAgreesWithConstructor(t *testing.T) {
	t.Parallel()

	for _, fc := range fieldCases() {
		t.Run(fc.name, func(t *testing.T) {
			t.Parallel()

			for _, s := range fc.valid {
				assert.True(t, fc.isValid(s), "%q should be valid", s)
				assert.NoError(t, fc.construct(s), "%q should construct", s)
			}
			for _, s := range fc.invalid {
				assert.False(t, fc.isValid(s), "%q should be invalid", s)

				err := fc.construct(s)
				require.Error(t, err, "%q should not construct", s)
				assert.ErrorIs(t, err, domain.ErrInvalidField)

				var fieldErr *domain.InvalidFieldError
				require.True(t, errors.As(err, &fieldErr))
				assert.NotEmpty(t, fieldErr.Message)
			}
		})
	}
}

func TestFieldValuesAreStoredVerbatim(t *testing.T) {
	t.Parallel()

	name, err := domain.NewName("Bob Choo")
	require.NoError(t, err)
	assert.Equal(t, "Bob Choo", name.String())

	scholarship, err := domain.NewScholarship("Arts ")
	require.NoError(t, err)
	assert.Equal(t, "Arts ", scholarship.String())
}

func TestInvalidFieldErrorCarriesConstraint(t *testing.T) {
	t.Parallel()

	_, err := domain.NewPhone("12")
	var fieldErr *domain.InvalidFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "phone", fieldErr.Field)
	assert.Equal(t, domain.PhoneConstraints, fieldErr.Message)
}

func TestApplicationStatus(t *testing.T) {
	t.Parallel()

	t.Run("normalizes to lower case", func(t *testing.T) {
		status, err := domain.NewApplicationStatus("ACCEPTED")
		require.NoError(t, err)
		assert.Equal(t, "accepted", status.String())
		assert.Equal(t, domain.StatusAccepted, status)
	})

	t.Run("orders by rank", func(t *testing.T) {
		assert.Negative(t, domain.StatusPending.Compare(domain.StatusAccepted))
		assert.Negative(t, domain.StatusAccepted.Compare(domain.StatusRejected))
		assert.Negative(t, domain.StatusPending.Compare(domain.StatusRejected))
		assert.Positive(t, domain.StatusRejected.Compare(domain.StatusPending))
		assert.Zero(t, domain.StatusAccepted.Compare(domain.StatusAccepted))
	})
}

func TestNameAndScholarshipCompareCaseSensitively(t *testing.T) {
	t.Parallel()

	upper, _ := domain.NewName("Bob")
	lower, _ := domain.NewName("bob")
	assert.Negative(t, upper.Compare(lower))

	arts, _ := domain.NewScholarship("Arts")
	sports, _ := domain.NewScholarship("Sports")
	assert.Negative(t, arts.Compare(sports))
	assert.Zero(t, arts.Compare(arts))
}

func TestNewMajors(t *testing.T) {
	t.Parallel()

	t.Run("collapses duplicates", func(t *testing.T) {
		majors, err := domain.NewMajors("Physics", "Physics")
		require.NoError(t, err)
		assert.Len(t, majors, 1)
	})

	t.Run("rejects more than two", func(t *testing.T) {
		_, err := domain.NewMajors("Physics", "Chemistry", "Biology")
		assert.ErrorIs(t, err, domain.ErrInvalidField)
	})

	t.Run("allows none", func(t *testing.T) {
		majors, err := domain.NewMajors()
		require.NoError(t, err)
		assert.Empty(t, majors)
	})
}
