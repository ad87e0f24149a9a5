package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/broadcast"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/feed"
	tickDomain "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/tick"
	tickInfra "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/metrics"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
)

const resubscribeDelay = 2 * time.Second

// TickConsumer reads tick messages from the feed, persists them and
// fans them out to websocket subscribers.
type TickConsumer struct {
	subscriber  feed.Subscriber
	logger      logger.Interface
	tickUsecase tickDomain.Usecase
	broadcaster broadcast.Broadcaster
	metrics     *metrics.Metrics

	resubscribeDelay time.Duration
}

// NewTickConsumer creates a new TickConsumer.
func NewTickConsumer(
	subscriber feed.Subscriber,
	logger logger.Interface,
	tickUsecase tickDomain.Usecase,
	broadcaster broadcast.Broadcaster,
	metrics *metrics.Metrics,
) *TickConsumer {
	return &TickConsumer{
		subscriber:       subscriber,
		logger:           logger,
		tickUsecase:      tickUsecase,
		broadcaster:      broadcaster,
		metrics:          metrics,
		resubscribeDelay: resubscribeDelay,
	}
}

// Start runs the consume loop until ctx is cancelled. When the feed
// channel closes it resubscribes after a short delay.
func (c *TickConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "starting tick consumer", logger.Field{
		Key:   "action",
		Value: "tick_consumer_start",
	})

	for {
		messages, err := c.subscriber.Subscribe(ctx)
		if err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "subscribe_feed",
			})
		} else {
			c.consume(ctx, messages)
		}

		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "tick_consumer_stop",
			})
			return
		case <-time.After(c.resubscribeDelay):
			c.logger.WarnContext(ctx, "feed lost, resubscribing", logger.Field{
				Key:   "action",
				Value: "resubscribe_feed",
			})
		}
	}
}

// Stop stops the TickConsumer.
func (c *TickConsumer) Stop() error {
	c.logger.InfoContext(context.Background(), "stopping tick consumer", logger.Field{
		Key:   "action",
		Value: "tick_consumer_stop",
	})
	return c.subscriber.Close()
}

func (c *TickConsumer) consume(ctx context.Context, messages <-chan *feed.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			c.handleMessage(ctx, msg)
		}
	}
}

func (c *TickConsumer) handleMessage(ctx context.Context, msg *feed.Message) {
	var wire tickInfra.Message
	if err := json.Unmarshal([]byte(msg.Payload), &wire); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "unmarshal_tick",
		})
		c.metrics.TicksDropped.WithLabelValues("unmarshal").Inc()
		return
	}

	timestamp, err := time.Parse(time.RFC3339, wire.Time)
	if err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "parse_tick_time",
		})
		c.metrics.TicksDropped.WithLabelValues("invalid_time").Inc()
		return
	}

	entry := &tickInfra.Tick{
		Time:   timestamp,
		Symbol: wire.Symbol,
		Price:  wire.Price,
	}
	if err := c.tickUsecase.CreateTick(ctx, entry); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "store_tick",
		})
		c.metrics.TicksDropped.WithLabelValues("persist").Inc()
		return
	}

	c.metrics.TicksConsumed.Inc()
	c.broadcaster.Broadcast(broadcast.TopicRawTicks, entry.ToMessage())
}
