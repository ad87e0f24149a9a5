package broadcast

// Topic identifies one fan-out stream.
type Topic string

const (
	// TopicRawTicks carries every persisted tick.
	TopicRawTicks Topic = "raw-ticks"
	// TopicAggregateMinute carries periodic minute bucket snapshots.
	TopicAggregateMinute Topic = "aggregate-minute"
	// TopicAggregateHour carries periodic hour bucket snapshots.
	TopicAggregateHour Topic = "aggregate-hour"
	// TopicAggregateDay carries periodic day bucket snapshots.
	TopicAggregateDay Topic = "aggregate-day"
)

// Subscriber receives broadcast payloads. Send must not block
// indefinitely; a failed Send gets the subscriber dropped from the
// topic.
type Subscriber interface {
	Send(message []byte) error
}

// Broadcaster fans messages out to topic subscribers.
//
//go:generate mockgen -source=interface.go -destination=mock/broadcaster_mock.go -package=mock
type Broadcaster interface {
	Register(topic Topic, sub Subscriber)
	Unregister(topic Topic, sub Subscriber)
	Broadcast(topic Topic, message any)
	SubscriberCount(topic Topic) int
}
