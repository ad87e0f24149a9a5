package interval

import (
	"time"
)

// BucketStart calculates the start time of the bucket containing timestamp.
func (g Granularity) BucketStart(timestamp time.Time) time.Time {
	switch g.Name {
	case "minute":
		return timestamp.Truncate(time.Minute)
	case "hour":
		return timestamp.Truncate(time.Hour)
	case "day":
		t := timestamp.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	default:
		return timestamp.Truncate(g.Bucket)
	}
}

// BucketRange returns the start and end time of the bucket containing
// timestamp.
func (g Granularity) BucketRange(timestamp time.Time) (start, end time.Time) {
	start = g.BucketStart(timestamp)
	end = start.Add(g.Bucket)
	return start, end
}

// SameBucket checks if two timestamps fall within the same bucket.
func (g Granularity) SameBucket(t1, t2 time.Time) bool {
	return g.BucketStart(t1).Equal(g.BucketStart(t2))
}

// CustomDayStart calculates the start of the 24h bucket containing
// timestamp, where days roll over at dayStartHour o'clock in the
// timestamp's own location. A timestamp before today's boundary belongs
// to the bucket that opened yesterday.
func CustomDayStart(timestamp time.Time, dayStartHour int) time.Time {
	boundary := time.Date(
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		dayStartHour, 0, 0, 0, timestamp.Location(),
	)
	if timestamp.Before(boundary) {
		boundary = boundary.AddDate(0, 0, -1)
	}
	return boundary
}

// CustomDayRange returns the [start, end) bounds of the custom-day
// bucket containing timestamp.
func CustomDayRange(timestamp time.Time, dayStartHour int) (start, end time.Time) {
	start = CustomDayStart(timestamp, dayStartHour)
	end = start.AddDate(0, 0, 1)
	return start, end
}
