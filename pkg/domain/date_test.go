package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAddDate(t *testing.T) {
	cases := []struct {
		name          string
		start         Date
		years, months int
		want          Date
	}{
		{"one year", "2024-03-15", 1, 0, "2025-03-15"},
		{"leap day rolls over", "2024-02-29", 1, 0, "2025-03-01"},
		{"six months", "2024-01-10", 0, 6, "2024-07-10"},
		{"month overflow", "2023-01-31", 0, 1, "2023-03-03"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.start.AddDate(tc.years, tc.months, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Date("not-a-date").AddDate(0, 1, 0)
	assert.Error(t, err)
}

func TestDateHelpers(t *testing.T) {
	d := DateOf(time.Date(2025, 6, 3, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, Date("2025-06-03"), d)
	assert.True(t, d.Valid())
	assert.False(t, Date("").Valid())
	assert.True(t, Date("").IsZero())
	assert.Equal(t, "2025-06", d.Month())
	assert.Equal(t, "", Date("2025").Month())
	assert.True(t, Date("2025-01-01").Before("2025-01-02"))

	_, err := ParseDate("2025-13-01")
	assert.Error(t, err)
	parsed, err := ParseDate("2025-12-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", parsed.String())
}
