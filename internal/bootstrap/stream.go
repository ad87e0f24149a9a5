package bootstrap

import (
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/consumer"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/redisfeed"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/publisher"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/ws"
)

// Stream holds the streaming workers: the feed consumer, the fan-out
// hub and the periodic aggregate publisher.
type Stream struct {
	Hub          *ws.Hub
	TickConsumer *consumer.TickConsumer
	Publisher    *publisher.AggregatePublisher
}

// registerStream registers the streaming workers.
func (b *Bootstrap) registerStream() {
	b.Stream.Hub = ws.NewHub(b.Logger, b.Metrics)

	feed := redisfeed.NewSubscriber(b.Redis, b.Config.Redis.TickChannel, b.Logger)
	b.Stream.TickConsumer = consumer.NewTickConsumer(feed, b.Logger, b.Usecase.TickUsecase, b.Stream.Hub, b.Metrics)

	b.Stream.Publisher = publisher.NewAggregatePublisher(
		b.Config.Publisher,
		b.Usecase.OHLCUsecase,
		b.Stream.Hub,
		b.Redis,
		b.Logger,
		b.Metrics,
	)
}
