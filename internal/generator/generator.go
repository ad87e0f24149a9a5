// Package generator emits a synthetic random-walk tick stream, useful
// for local development and demos.
package generator

import (
	"context"
	"encoding/json"
	"math"
	"math/rand/v2"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/metrics"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/config"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
)

const (
	maxStep  = 0.0005
	minPrice = 0.5
	maxPrice = 2.0
)

// Generator publishes random-walk ticks onto the feed channel.
type Generator struct {
	redisClient    redis.Client
	tickRepository tick.TickRepository
	logger         logger.Interface
	metrics        *metrics.Metrics

	symbol   string
	channel  string
	interval time.Duration
	price    float64

	now      func() time.Time
	randStep func() float64
}

// NewGenerator creates a Generator starting at the configured price.
func NewGenerator(
	cfg config.GeneratorConfig,
	channel string,
	redisClient redis.Client,
	tickRepository tick.TickRepository,
	logger logger.Interface,
	metrics *metrics.Metrics,
) *Generator {
	return &Generator{
		redisClient:    redisClient,
		tickRepository: tickRepository,
		logger:         logger,
		metrics:        metrics,
		symbol:         cfg.Symbol,
		channel:        channel,
		interval:       cfg.Interval,
		price:          cfg.StartPrice,
		now:            time.Now,
		randStep: func() float64 {
			return (rand.Float64()*2 - 1) * maxStep
		},
	}
}

// Start publishes one tick per interval until ctx is cancelled.
func (g *Generator) Start(ctx context.Context) {
	g.logger.InfoContext(ctx, "starting tick generator", logger.Field{
		Key:   "action",
		Value: "generator_start",
	}, logger.Field{
		Key:   "symbol",
		Value: g.symbol,
	})

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "generator_stop",
			})
			return
		case <-ticker.C:
			g.publishTick(ctx)
		}
	}
}

// Backfill seeds historical ticks directly into storage, one per
// interval between from and to. Used to warm the aggregates before
// live streaming starts.
func (g *Generator) Backfill(ctx context.Context, from, to time.Time) (int64, error) {
	var ticks []*tick.Tick
	price := g.price
	for ts := from; ts.Before(to); ts = ts.Add(g.interval) {
		price = g.step(price)
		ticks = append(ticks, &tick.Tick{
			Time:   ts,
			Symbol: g.symbol,
			Price:  price,
		})
	}
	if len(ticks) == 0 {
		return 0, nil
	}

	g.price = price
	return g.tickRepository.BulkImport(ctx, ticks)
}

func (g *Generator) publishTick(ctx context.Context) {
	g.price = g.step(g.price)

	message := tick.Message{
		Time:   g.now().UTC().Format(time.RFC3339),
		Symbol: g.symbol,
		Price:  g.price,
	}
	payload, err := json.Marshal(message)
	if err != nil {
		g.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "marshal_tick",
		})
		return
	}

	if _, err := g.redisClient.Publish(ctx, g.channel, payload); err != nil {
		g.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "publish_tick",
		})
		return
	}
	g.metrics.TicksPublished.Inc()
}

// step advances the random walk and keeps the price inside its band.
func (g *Generator) step(price float64) float64 {
	next := price + g.randStep()
	next = math.Max(minPrice, math.Min(maxPrice, next))
	// quotes carry five decimal places, like real FX feeds
	return math.Round(next*100000) / 100000
}
