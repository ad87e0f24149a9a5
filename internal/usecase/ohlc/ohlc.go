package ohlc

import (
	"context"
	"fmt"
	"time"

	domain "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/ohlc"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/ohlc"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/interval"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
)

const (
	// DefaultQueryLimit applies when a bucket query does not set a limit.
	DefaultQueryLimit = 1000
	// MaxQueryLimit is the hard ceiling for a single bucket query.
	MaxQueryLimit = 10000
)

// Usecase is the usecase for the OHLC.
type Usecase struct {
	ohlcRepository ohlc.OHLCRepository
	logger         logger.Interface
}

// NewUsecase creates a new OHLC usecase.
func NewUsecase(ohlcRepository ohlc.OHLCRepository, logger logger.Interface) *Usecase {
	return &Usecase{ohlcRepository: ohlcRepository, logger: logger}
}

// GetBuckets retrieves OHLC buckets for a query, oldest first. The
// query span must fit the granularity's maximum; custom-day queries
// additionally need a day start hour between 0 and 23.
func (u *Usecase) GetBuckets(ctx context.Context, query domain.Query) ([]*ohlc.OHLC, error) {
	g, err := interval.Get(query.Granularity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "granularity")
	}

	if query.Symbol == "" {
		return nil, errors.NewValidationError("symbol must not be empty", "symbol")
	}
	if query.To.Before(query.From) {
		return nil, errors.NewValidationError("to must not be before from", "to")
	}
	if g.Name == interval.CustomDay.Name && (query.DayStartHour < 0 || query.DayStartHour > 23) {
		return nil, errors.NewValidationError("day_start_hour must be between 0 and 23", "day_start_hour")
	}

	if !g.SpanWithin(query.From, query.To) {
		return nil, errors.NewRangeTooLarge(formatSpan(query.To.Sub(query.From)), g.MaxSpanLabel)
	}

	limit := query.Limit
	if limit < 0 {
		return nil, errors.NewValidationError("limit must not be negative", "limit")
	}
	if limit == 0 {
		limit = DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		return nil, errors.NewValidationError(
			fmt.Sprintf("limit must not exceed %d", MaxQueryLimit), "limit")
	}

	var buckets []*ohlc.OHLC
	if g.Name == interval.CustomDay.Name {
		buckets, err = u.ohlcRepository.GetCustomDayBuckets(ctx, query.Symbol, query.From, query.To, query.DayStartHour)
	} else {
		buckets, err = u.ohlcRepository.GetBuckets(ctx, g, query.Symbol, query.From, query.To)
	}
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return nil, errors.NewErrorDetails("failed to query buckets", string(errors.TimescaleQueryError), "")
	}

	if len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets, nil
}

// GetLatestBucket retrieves the most recent bucket for a symbol.
// Returns nil when the symbol has no data yet.
func (u *Usecase) GetLatestBucket(ctx context.Context, g interval.Granularity, symbol string) (*ohlc.OHLC, error) {
	bucket, err := u.ohlcRepository.GetLatestBucket(ctx, g, symbol)
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return nil, errors.NewErrorDetails("failed to query latest bucket", string(errors.TimescaleQueryError), "")
	}
	return bucket, nil
}

// formatSpan renders a duration the way range errors report it, in
// whole days once the span reaches two of them.
func formatSpan(d time.Duration) string {
	if d >= 48*time.Hour {
		days := int(d / (24 * time.Hour))
		if d%(24*time.Hour) != 0 {
			days++
		}
		return fmt.Sprintf("%d days", days)
	}
	hours := int(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return fmt.Sprintf("%d hours", hours)
}
