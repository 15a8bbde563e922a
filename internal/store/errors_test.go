package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("applicant", "add", "name already registered", ErrDuplicateApplicant)
		assert.Equal(t,
			"add operation on applicant failed: name already registered: entity already exists: applicant",
			err.Error())
		assert.ErrorIs(t, err, ErrDuplicateApplicant)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("applicant", "reset", "source rejected", nil)
		assert.Equal(t, "reset operation on applicant failed: source rejected", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
