// Package publisher pushes the latest aggregate buckets to live
// subscribers on a fixed cadence.
package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/broadcast"
	ohlcDomain "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/ohlc"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/metrics"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/config"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/interval"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
)

// AggregateMessage is the wire form of one published bucket snapshot.
type AggregateMessage struct {
	Interval  string  `json:"interval"`
	Bucket    string  `json:"bucket"`
	Symbol    string  `json:"symbol"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	TickCount int64   `json:"tick_count"`
	Timestamp string  `json:"timestamp"`
}

// AggregatePublisher polls the latest bucket per granularity and hands
// it to the broadcaster and the feed.
type AggregatePublisher struct {
	ohlcUsecase ohlcDomain.Usecase
	broadcaster broadcast.Broadcaster
	redisClient redis.Client
	logger      logger.Interface
	metrics     *metrics.Metrics

	interval time.Duration
	symbols  []string
	now      func() time.Time
}

// NewAggregatePublisher creates a publisher on the given cadence.
func NewAggregatePublisher(
	cfg config.PublisherConfig,
	ohlcUsecase ohlcDomain.Usecase,
	broadcaster broadcast.Broadcaster,
	redisClient redis.Client,
	logger logger.Interface,
	metrics *metrics.Metrics,
) *AggregatePublisher {
	return &AggregatePublisher{
		ohlcUsecase: ohlcUsecase,
		broadcaster: broadcaster,
		redisClient: redisClient,
		logger:      logger,
		metrics:     metrics,
		interval:    cfg.Interval,
		symbols:     cfg.Symbols,
		now:         time.Now,
	}
}

// Start runs the publish loop until ctx is cancelled.
func (p *AggregatePublisher) Start(ctx context.Context) {
	p.logger.InfoContext(ctx, "starting aggregate publisher", logger.Field{
		Key:   "action",
		Value: "aggregate_publisher_start",
	})

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "aggregate_publisher_stop",
			})
			return
		case <-ticker.C:
			p.publishCycle(ctx)
		}
	}
}

// publishCycle publishes the latest bucket for every materialized
// granularity and symbol. A failure for one granularity never blocks
// the others.
func (p *AggregatePublisher) publishCycle(ctx context.Context) {
	for _, granularity := range interval.Materialized {
		for _, symbol := range p.symbols {
			p.publishLatest(ctx, granularity, symbol)
		}
	}
}

func (p *AggregatePublisher) publishLatest(ctx context.Context, granularity interval.Granularity, symbol string) {
	bucket, err := p.ohlcUsecase.GetLatestBucket(ctx, granularity, symbol)
	if err != nil {
		p.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "load_latest_bucket",
		}, logger.Field{
			Key:   "granularity",
			Value: granularity.Name,
		})
		p.metrics.AggregateErrors.WithLabelValues(granularity.Name).Inc()
		return
	}
	if bucket == nil {
		return
	}

	message := &AggregateMessage{
		Interval:  granularity.Name,
		Bucket:    bucket.Bucket.UTC().Format(time.RFC3339),
		Symbol:    bucket.Symbol,
		Open:      bucket.Open,
		High:      bucket.High,
		Low:       bucket.Low,
		Close:     bucket.Close,
		TickCount: bucket.TickCount,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	p.broadcaster.Broadcast(broadcast.Topic(granularity.Topic), message)

	// mirror onto the feed for non-websocket consumers, best effort
	payload, err := json.Marshal(message)
	if err == nil {
		if _, err := p.redisClient.Publish(ctx, granularity.Topic, payload); err != nil {
			p.logger.WarnContext(ctx, "failed to publish aggregate to feed", logger.Field{
				Key:   "granularity",
				Value: granularity.Name,
			})
		}
	}

	p.metrics.AggregatePublishes.WithLabelValues(granularity.Name).Inc()
}
