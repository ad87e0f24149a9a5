package interval

import (
	"fmt"
	"time"
)

// Granularity describes one OHLC bucket size together with the database
// view that materializes it and the limits queries against it must obey.
type Granularity struct {
	Name string
	// Bucket is the width of a single OHLC bucket.
	Bucket time.Duration
	// MaxSpan caps the [from, to) range of a single query.
	MaxSpan time.Duration
	// MaxSpanLabel is the human-readable form of MaxSpan used in
	// range validation errors.
	MaxSpanLabel string
	// View is the continuous aggregate backing this granularity.
	// Empty for custom-day, which is computed on demand.
	View string
	// Topic is the fan-out topic periodic snapshots are published on.
	Topic string
	// RefreshEvery and RefreshWindow drive the continuous aggregate
	// refresh policy. Zero for custom-day.
	RefreshEvery  time.Duration
	RefreshWindow time.Duration
}

// Supported granularities.
var (
	Minute = Granularity{
		Name:          "minute",
		Bucket:        time.Minute,
		MaxSpan:       7 * 24 * time.Hour,
		MaxSpanLabel:  "7 days",
		View:          "fx_ohlc_minute",
		Topic:         "aggregate-minute",
		RefreshEvery:  5 * time.Second,
		RefreshWindow: time.Hour,
	}
	Hour = Granularity{
		Name:          "hour",
		Bucket:        time.Hour,
		MaxSpan:       180 * 24 * time.Hour,
		MaxSpanLabel:  "180 days",
		View:          "fx_ohlc_hour",
		Topic:         "aggregate-hour",
		RefreshEvery:  30 * time.Second,
		RefreshWindow: 24 * time.Hour,
	}
	Day = Granularity{
		Name:          "day",
		Bucket:        24 * time.Hour,
		MaxSpan:       10 * 365 * 24 * time.Hour,
		MaxSpanLabel:  "10 years",
		View:          "fx_ohlc_day",
		Topic:         "aggregate-day",
		RefreshEvery:  5 * time.Minute,
		RefreshWindow: 7 * 24 * time.Hour,
	}
	CustomDay = Granularity{
		Name:         "custom-day",
		Bucket:       24 * time.Hour,
		MaxSpan:      10 * 365 * 24 * time.Hour,
		MaxSpanLabel: "10 years",
	}
)

// Materialized lists the granularities backed by continuous aggregates,
// in refresh order.
var Materialized = []Granularity{Minute, Hour, Day}

// All lists every supported granularity.
var All = []Granularity{Minute, Hour, Day, CustomDay}

var registry = make(map[string]Granularity)

func init() {
	for _, g := range All {
		registry[g.Name] = g
	}
}

// Get returns a granularity by name.
func Get(name string) (Granularity, error) {
	g, exists := registry[name]
	if !exists {
		return Granularity{}, fmt.Errorf("unsupported granularity: %s", name)
	}
	return g, nil
}

// IsValid checks if a granularity name is supported.
func IsValid(name string) bool {
	_, exists := registry[name]
	return exists
}

// Names returns all supported granularity names.
func Names() []string {
	names := make([]string, 0, len(All))
	for _, g := range All {
		names = append(names, g.Name)
	}
	return names
}

// SpanWithin reports whether [from, to] fits inside the granularity's
// maximum query span.
func (g Granularity) SpanWithin(from, to time.Time) bool {
	return to.Sub(from) <= g.MaxSpan
}
