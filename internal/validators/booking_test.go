package validators

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
)

func TestParseWindow(t *testing.T) {
	start, end, err := ParseWindow("2024-06-03T10:00", " 2024-06-04T10:00:00 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC), end)

	start, _, err = ParseWindow("2024-06-03T10:00:00-03:00", "2024-06-04T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, start.Hour(), "offsets are dropped, not applied")
}

func TestParseWindowRejects(t *testing.T) {
	cases := [][2]string{
		{"", "2024-06-04T10:00"},
		{"tomorrow", "2024-06-04T10:00"},
		{"2024-06-04T10:00", "2024-06-04T10:00"},
		{"2024-06-05T10:00", "2024-06-04T10:00"},
	}
	for _, c := range cases {
		_, _, err := ParseWindow(c[0], c[1])
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidWindow), "%q..%q", c[0], c[1])
	}
}

func TestDuration(t *testing.T) {
	d, err := Duration(0, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultDuration, d)

	d, err = Duration(30, true)
	require.NoError(t, err)
	assert.Equal(t, 30, d)

	for _, bad := range []int{0, -15, MaxDuration + 1} {
		_, err = Duration(bad, true)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDuration), "%d", bad)
	}
}

func TestIsTitleValid(t *testing.T) {
	assert.True(t, IsTitleValid("Meeting"))
	assert.False(t, IsTitleValid("   "))
	assert.False(t, IsTitleValid(strings.Repeat("x", MaxTitleLength+1)))
}
