package tick

import (
	"context"
	"time"
)

// TickRepository is the interface for the tick repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type TickRepository interface {
	Upsert(ctx context.Context, tick *Tick) error
	UpsertBatch(ctx context.Context, ticks []*Tick) error
	BulkImport(ctx context.Context, ticks []*Tick) (int64, error)
	GetByFilter(ctx context.Context, filter Filter) ([]*Tick, error)
	GetLatestBySymbol(ctx context.Context, symbol string) (*Tick, error)
	UpdatePrice(ctx context.Context, symbol string, ts time.Time, price float64) (int64, error)
	DeletePoint(ctx context.Context, symbol string, ts time.Time) (int64, error)
	DeleteRange(ctx context.Context, symbol string, from, to time.Time) (int64, error)
}
