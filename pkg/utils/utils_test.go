package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "mid-month",
			input:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "jan 31 clamps to leap-year feb 29",
			input:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "jan 31 clamps to feb 28 off leap years",
			input:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "oct 31 clamps to nov 30",
			input:    time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			input:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "feb 29 keeps its day when it fits",
			input:    time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonth(tt.input))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestParseDate(t *testing.T) {
	expected := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2024-01-02", "2024/01/02", "01/02/2024"} {
		parsed, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, parsed, input)
	}

	parsed, err := ParseDate("2024-01-02T00:00:00Z")
	require.NoError(t, err)
	assert.True(t, expected.Equal(parsed))

	_, err = ParseDate("next tuesday")
	assert.Error(t, err)
}
