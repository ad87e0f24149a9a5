package tick

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/timescale"
)

// Repository represents the repository for tick data.
type Repository struct {
	client timescale.TimescaleClient
}

// NewRepository creates a new tick repository.
func NewRepository(client timescale.TimescaleClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Upsert stores a tick, overwriting the price if the (symbol, time) key
// already exists.
func (r *Repository) Upsert(ctx context.Context, tick *Tick) error {
	query := `INSERT INTO fx_ticks (time, symbol, price)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (symbol, time) DO UPDATE SET price = EXCLUDED.price`

	_, err := r.client.Exec(ctx, query, tick.Time, tick.Symbol, tick.Price)
	if err != nil {
		return fmt.Errorf("failed to upsert tick: %w", err)
	}

	return nil
}

// UpsertBatch stores a batch of ticks in a single statement. Duplicate
// keys inside the batch or against stored rows take the incoming price.
func (r *Repository) UpsertBatch(ctx context.Context, ticks []*Tick) error {
	if len(ticks) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO fx_ticks (time, symbol, price) VALUES ")

	args := make([]any, 0, len(ticks)*3)
	for i, tick := range ticks {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, tick.Time, tick.Symbol, tick.Price)
	}

	sb.WriteString(" ON CONFLICT (symbol, time) DO UPDATE SET price = EXCLUDED.price")

	_, err := r.client.Exec(ctx, sb.String(), args...)
	if err != nil {
		return fmt.Errorf("failed to upsert tick batch: %w", err)
	}

	return nil
}

// BulkImport loads ticks via COPY. Faster than UpsertBatch for large
// seed loads, but it does not resolve duplicate keys.
func (r *Repository) BulkImport(ctx context.Context, ticks []*Tick) (int64, error) {
	if len(ticks) == 0 {
		return 0, nil
	}

	copyCount, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"fx_ticks"},
		[]string{"time", "symbol", "price"},
		pgx.CopyFromSlice(len(ticks), func(i int) ([]any, error) {
			tick := ticks[i]
			return []any{
				tick.Time,
				tick.Symbol,
				tick.Price,
			}, nil
		}),
	)

	if err != nil {
		return 0, fmt.Errorf("failed to copy ticks: %w", err)
	}

	return copyCount, nil
}

// GetByFilter retrieves ticks by filter, oldest first.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Tick, error) {
	query := "SELECT time, symbol, price FROM fx_ticks WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Symbol != "" {
		query += fmt.Sprintf(" AND symbol = $%d", argIndex)
		args = append(args, filter.Symbol)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND time >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND time < $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY time ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ticks: %w", err)
	}
	defer rows.Close()

	var ticks []*Tick
	for rows.Next() {
		tick := &Tick{}
		err := rows.Scan(&tick.Time, &tick.Symbol, &tick.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tick: %w", err)
		}
		ticks = append(ticks, tick)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ticks, nil
}

// GetLatestBySymbol retrieves the most recent tick for a symbol.
// Returns nil when the symbol has no ticks.
func (r *Repository) GetLatestBySymbol(ctx context.Context, symbol string) (*Tick, error) {
	query := `SELECT time, symbol, price
			  FROM fx_ticks
			  WHERE symbol = $1
			  ORDER BY time DESC
			  LIMIT 1`

	tick := &Tick{}
	err := r.client.QueryRow(ctx, query, symbol).Scan(
		&tick.Time, &tick.Symbol, &tick.Price)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest tick: %w", err)
	}

	return tick, nil
}

// UpdatePrice rewrites the price of an existing tick. Returns the number
// of rows touched, zero when the (symbol, time) key does not exist.
func (r *Repository) UpdatePrice(ctx context.Context, symbol string, ts time.Time, price float64) (int64, error) {
	query := `UPDATE fx_ticks SET price = $1 WHERE symbol = $2 AND time = $3`

	affected, err := r.client.Exec(ctx, query, price, symbol, ts)
	if err != nil {
		return 0, fmt.Errorf("failed to update tick price: %w", err)
	}

	return affected, nil
}

// DeletePoint removes a single tick. Returns the number of rows removed.
func (r *Repository) DeletePoint(ctx context.Context, symbol string, ts time.Time) (int64, error) {
	query := `DELETE FROM fx_ticks WHERE symbol = $1 AND time = $2`

	deleted, err := r.client.Exec(ctx, query, symbol, ts)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tick: %w", err)
	}

	return deleted, nil
}

// DeleteRange removes all ticks for a symbol inside [from, to).
// Returns the number of rows removed.
func (r *Repository) DeleteRange(ctx context.Context, symbol string, from, to time.Time) (int64, error) {
	query := `DELETE FROM fx_ticks WHERE symbol = $1 AND time >= $2 AND time < $3`

	deleted, err := r.client.Exec(ctx, query, symbol, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tick range: %w", err)
	}

	return deleted, nil
}
