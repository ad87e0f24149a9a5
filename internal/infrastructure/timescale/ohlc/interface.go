package ohlc

import (
	"context"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/interval"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// OHLCRepository represents the repository interface for OHLC data.
type OHLCRepository interface {
	GetBuckets(ctx context.Context, g interval.Granularity, symbol string, from, to time.Time) ([]*OHLC, error)
	GetLatestBucket(ctx context.Context, g interval.Granularity, symbol string) (*OHLC, error)
	GetCustomDayBuckets(ctx context.Context, symbol string, from, to time.Time, dayStartHour int) ([]*OHLC, error)
}
