package timezone_test

import (
	"bookit/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	defer func() { _ = timezone.Init("UTC") }()

	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{name: "empty falls back to UTC", input: "", expected: "UTC"},
		{name: "named zone", input: "Asia/Kolkata", expected: "Asia/Kolkata"},
		{name: "unknown zone keeps UTC", input: "Mars/Olympus", expected: "UTC", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := timezone.Init(tt.input)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expected, timezone.GetLocation().String())
		})
	}
}

func TestStartOfDay(t *testing.T) {
	require.NoError(t, timezone.Init("Asia/Kolkata"))
	defer func() { _ = timezone.Init("UTC") }()

	// 20:00 UTC is already the next calendar day in Kolkata (+05:30).
	input := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	start := timezone.StartOfDay(input)

	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 11, start.Day())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, "Asia/Kolkata", start.Location().String())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.False(t, today.IsZero())
	assert.False(t, today.After(timezone.Now()))
	assert.Equal(t, 0, today.Hour())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", timezone.Format(parsed, time.DateOnly))
	assert.NotEmpty(t, timezone.Format(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), time.RFC3339))
}
