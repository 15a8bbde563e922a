package api_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/trackascholar/internal/api"
	"github.com/phrazzld/trackascholar/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "  42 ", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := api.ParseIndex(tt.raw)
			if tt.wantErr {
				var parseErr *api.ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, api.MessageInvalidIndex, parseErr.Message)
				assert.ErrorIs(t, err, api.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusKeyword(t *testing.T) {
	t.Parallel()

	accepted := testutils.MustCreateApplicantForTest(t, testutils.WithStatus("accepted"))
	pending := testutils.MustCreateApplicantForTest(t)

	p, err := api.ParseStatusKeyword("  Accepted ")
	require.NoError(t, err)
	assert.Equal(t, "accepted", p.Keyword())
	assert.True(t, p.Test(accepted))
	assert.False(t, p.Test(pending))

	for _, raw := range []string{"", "   ", "accept", "accepted pending", "waitlisted"} {
		_, err := api.ParseStatusKeyword(raw)
		assert.ErrorIs(t, err, api.ErrParse, "keyword %q", raw)
	}
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"name", "SCHOLARSHIP", " status "} {
		cmp, err := api.ParseSortKey(raw)
		require.NoError(t, err, raw)
		assert.NotNil(t, cmp)
	}

	_, err := api.ParseSortKey("phone")
	var parseErr *api.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, api.MessageInvalidSortKey, parseErr.Message)
}

func TestCheckConfirmation(t *testing.T) {
	t.Parallel()

	assert.NoError(t, api.CheckConfirmation("yes"))
	assert.ErrorIs(t, api.CheckConfirmation(""), api.ErrConfirmationRequired)
	assert.ErrorIs(t, api.CheckConfirmation("YES please"), api.ErrConfirmationRequired)
}
