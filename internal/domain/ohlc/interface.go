package ohlc

import (
	"context"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/ohlc"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/interval"
)

// Query carries the parameters of a bucket lookup.
type Query struct {
	Symbol      string
	Granularity string
	From        time.Time
	To          time.Time
	// DayStartHour shifts the day boundary for custom-day queries.
	DayStartHour int
	// Limit caps the number of returned buckets. Zero means the
	// default limit.
	Limit int
}

// Usecase is the interface for the OHLC usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	GetBuckets(ctx context.Context, query Query) ([]*ohlc.OHLC, error)
	GetLatestBucket(ctx context.Context, g interval.Granularity, symbol string) (*ohlc.OHLC, error)
}
