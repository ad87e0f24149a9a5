package ohlc

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/interval"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/timescale"
)

// Repository represents the repository for OHLC data. Reads go against
// the continuous aggregate view of the requested granularity, so fresh
// ticks are merged in by the planner without waiting for a refresh.
type Repository struct {
	client timescale.TimescaleClient
}

// NewRepository creates a new OHLC repository.
func NewRepository(client timescale.TimescaleClient) *Repository {
	return &Repository{
		client: client,
	}
}

// GetBuckets retrieves OHLC buckets for a symbol inside [from, to],
// oldest first. The view name comes from the granularity registry,
// never from user input.
func (r *Repository) GetBuckets(ctx context.Context, g interval.Granularity, symbol string, from, to time.Time) ([]*OHLC, error) {
	query := fmt.Sprintf(`SELECT bucket, symbol, open, high, low, close, tick_count
			  FROM %s
			  WHERE symbol = $1 AND bucket >= $2 AND bucket < $3
			  ORDER BY bucket ASC`, g.View)

	rows, err := r.client.Query(ctx, query, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s buckets: %w", g.Name, err)
	}
	defer rows.Close()

	return scanBuckets(rows)
}

// GetLatestBucket retrieves the most recent bucket for a symbol.
// Returns nil when the symbol has no data.
func (r *Repository) GetLatestBucket(ctx context.Context, g interval.Granularity, symbol string) (*OHLC, error) {
	query := fmt.Sprintf(`SELECT bucket, symbol, open, high, low, close, tick_count
			  FROM %s
			  WHERE symbol = $1
			  ORDER BY bucket DESC
			  LIMIT 1`, g.View)

	bucket := &OHLC{}
	err := r.client.QueryRow(ctx, query, symbol).Scan(
		&bucket.Bucket, &bucket.Symbol, &bucket.Open, &bucket.High,
		&bucket.Low, &bucket.Close, &bucket.TickCount)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest %s bucket: %w", g.Name, err)
	}

	return bucket, nil
}

// GetCustomDayBuckets retrieves 24h buckets whose day rolls over at
// dayStartHour o'clock, computed on demand by the fx_custom_day_ohlc
// function. The from/to bounds carry the caller's timezone through to
// the bucket origin.
func (r *Repository) GetCustomDayBuckets(ctx context.Context, symbol string, from, to time.Time, dayStartHour int) ([]*OHLC, error) {
	query := `SELECT bucket, symbol, open, high, low, close, tick_count
			  FROM fx_custom_day_ohlc($1, $2, $3, $4)
			  ORDER BY bucket ASC`

	rows, err := r.client.Query(ctx, query, symbol, from, to, dayStartHour)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom-day buckets: %w", err)
	}
	defer rows.Close()

	return scanBuckets(rows)
}

func scanBuckets(rows timescale.RowsInterface) ([]*OHLC, error) {
	var buckets []*OHLC
	for rows.Next() {
		bucket := &OHLC{}
		err := rows.Scan(&bucket.Bucket, &bucket.Symbol, &bucket.Open,
			&bucket.High, &bucket.Low, &bucket.Close, &bucket.TickCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return buckets, nil
}
