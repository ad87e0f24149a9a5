package redisfeed

import (
	"context"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/feed"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

const messageBuffer = 256

// Subscriber adapts a Redis pub/sub channel to the feed.Subscriber
// interface.
type Subscriber struct {
	client  redis.Client
	channel string
	logger  logger.Interface

	pubSub *v9.PubSub
}

// NewSubscriber creates a feed subscriber reading from channel.
func NewSubscriber(client redis.Client, channel string, logger logger.Interface) *Subscriber {
	return &Subscriber{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Subscribe opens the pub/sub subscription and pumps messages into the
// returned channel. The channel closes when the subscription dies or
// ctx is cancelled.
func (s *Subscriber) Subscribe(ctx context.Context) (<-chan *feed.Message, error) {
	pubSub, err := s.client.Subscribe(ctx, s.channel)
	if err != nil {
		return nil, err
	}
	s.pubSub = pubSub

	out := make(chan *feed.Message, messageBuffer)
	go func() {
		defer close(out)

		in := pubSub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					s.logger.InfoContext(ctx, "feed subscription closed", logger.Field{
						Key:   "channel",
						Value: s.channel,
					})
					return
				}
				select {
				case out <- &feed.Message{Channel: msg.Channel, Payload: msg.Payload}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Close tears down the pub/sub subscription.
func (s *Subscriber) Close() error {
	if s.pubSub == nil {
		return nil
	}
	return s.pubSub.Close()
}
