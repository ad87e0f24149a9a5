package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGranularity_BucketStart(t *testing.T) {
	ts := time.Date(2024, 3, 15, 13, 45, 37, 500_000_000, time.UTC)

	testCases := []struct {
		name        string
		granularity Granularity
		timestamp   time.Time
		expected    time.Time
	}{
		{
			name:        "minute truncates seconds",
			granularity: Minute,
			timestamp:   ts,
			expected:    time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
		},
		{
			name:        "hour truncates minutes",
			granularity: Hour,
			timestamp:   ts,
			expected:    time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
		},
		{
			name:        "day truncates to UTC midnight",
			granularity: Day,
			timestamp:   ts,
			expected:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "exact bucket boundary stays put",
			granularity: Minute,
			timestamp:   time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
			expected:    time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.granularity.BucketStart(tc.timestamp))
		})
	}
}

func TestGranularity_BucketRange(t *testing.T) {
	ts := time.Date(2024, 3, 15, 13, 45, 37, 0, time.UTC)

	start, end := Minute.BucketRange(ts)
	assert.Equal(t, time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 15, 13, 46, 0, 0, time.UTC), end)
}

func TestGranularity_SameBucket(t *testing.T) {
	assert.True(t, Hour.SameBucket(
		time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 13, 59, 59, 0, time.UTC),
	))
	assert.False(t, Hour.SameBucket(
		time.Date(2024, 3, 15, 13, 59, 59, 0, time.UTC),
		time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC),
	))
}

func TestCustomDayStart(t *testing.T) {
	testCases := []struct {
		name         string
		timestamp    time.Time
		dayStartHour int
		expected     time.Time
	}{
		{
			name:         "just before boundary belongs to previous bucket",
			timestamp:    time.Date(2024, 3, 15, 21, 59, 59, 0, time.UTC),
			dayStartHour: 22,
			expected:     time.Date(2024, 3, 14, 22, 0, 0, 0, time.UTC),
		},
		{
			name:         "exact boundary opens new bucket",
			timestamp:    time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC),
			dayStartHour: 22,
			expected:     time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC),
		},
		{
			name:         "after boundary stays in current bucket",
			timestamp:    time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC),
			dayStartHour: 22,
			expected:     time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC),
		},
		{
			name:         "midnight start matches calendar day",
			timestamp:    time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
			dayStartHour: 0,
			expected:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "boundary respects the timestamp location",
			timestamp:    time.Date(2024, 3, 15, 21, 0, 0, 0, time.FixedZone("CET", 3600)),
			dayStartHour: 22,
			expected:     time.Date(2024, 3, 14, 22, 0, 0, 0, time.FixedZone("CET", 3600)),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CustomDayStart(tc.timestamp, tc.dayStartHour)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestCustomDayRange(t *testing.T) {
	start, end := CustomDayRange(time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC), 22)
	assert.Equal(t, time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 16, 22, 0, 0, 0, time.UTC), end)
}
