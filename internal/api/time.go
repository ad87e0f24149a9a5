package api

import (
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
)

const naiveLayout = "2006-01-02T15:04:05"

// parseTimestamp accepts an ISO-8601 datetime. Zone-less values are
// taken as UTC; zoned reports whether the input carried an explicit
// offset, which custom-day queries require.
func parseTimestamp(value, field string) (ts time.Time, zoned bool, err error) {
	if parsed, parseErr := time.Parse(time.RFC3339Nano, value); parseErr == nil {
		return parsed, true, nil
	}
	if parsed, parseErr := time.Parse(naiveLayout, value); parseErr == nil {
		return parsed.UTC(), false, nil
	}
	return time.Time{}, false, errors.NewValidationError(
		"invalid datetime, expected ISO 8601 (e.g. 2024-03-15T13:45:00Z)",
		field,
	)
}
