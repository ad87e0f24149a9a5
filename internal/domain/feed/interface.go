package feed

import (
	"context"
)

// Message is one payload received from the tick feed.
type Message struct {
	Channel string
	Payload string
}

// Subscriber delivers feed messages over a channel. The channel closes
// when the underlying subscription is lost or the context is cancelled,
// so consumers can detect disconnects and decide whether to redial.
//
//go:generate mockgen -source=interface.go -destination=mock/subscriber_mock.go -package=mock
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan *Message, error)
	Close() error
}
