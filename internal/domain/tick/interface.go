package tick

import (
	"context"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
)

// Usecase is the interface for the tick usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	CreateTick(ctx context.Context, tick *tick.Tick) error
	CreateTicks(ctx context.Context, ticks []*tick.Tick) error
	GetTicks(ctx context.Context, filter tick.Filter) ([]*tick.Tick, error)
	GetLatestTick(ctx context.Context, symbol string) (*tick.Tick, error)
	UpdateTickPrice(ctx context.Context, symbol string, ts time.Time, price float64) (*tick.Tick, error)
	DeleteTick(ctx context.Context, symbol string, ts time.Time) error
	DeleteTickRange(ctx context.Context, symbol string, from, to time.Time) (int64, error)
	PublishTick(ctx context.Context, tick *tick.Tick)
}
