// Package ws fans tick and aggregate updates out to websocket clients.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/broadcast"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/metrics"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
)

// Hub keeps per-topic subscriber sets and implements
// broadcast.Broadcaster.
type Hub struct {
	logger  logger.Interface
	metrics *metrics.Metrics

	mu     sync.RWMutex
	topics map[broadcast.Topic]map[broadcast.Subscriber]struct{}
}

// NewHub creates an empty Hub.
func NewHub(logger logger.Interface, metrics *metrics.Metrics) *Hub {
	return &Hub{
		logger:  logger,
		metrics: metrics,
		topics:  make(map[broadcast.Topic]map[broadcast.Subscriber]struct{}),
	}
}

// Register adds sub to the topic's subscriber set.
func (h *Hub) Register(topic broadcast.Topic, sub broadcast.Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers, ok := h.topics[topic]
	if !ok {
		subscribers = make(map[broadcast.Subscriber]struct{})
		h.topics[topic] = subscribers
	}
	subscribers[sub] = struct{}{}

	h.metrics.TopicSubscribers.WithLabelValues(string(topic)).Set(float64(len(subscribers)))
}

// Unregister removes sub from the topic's subscriber set.
func (h *Hub) Unregister(topic broadcast.Topic, sub broadcast.Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers, ok := h.topics[topic]
	if !ok {
		return
	}
	delete(subscribers, sub)

	h.metrics.TopicSubscribers.WithLabelValues(string(topic)).Set(float64(len(subscribers)))
}

// Broadcast marshals message and sends it to every subscriber of the
// topic. Subscribers whose Send fails are dropped so one dead
// connection cannot stall the stream.
func (h *Hub) Broadcast(topic broadcast.Topic, message any) {
	payload, err := json.Marshal(message)
	if err != nil {
		h.logger.Error(err, logger.Field{
			Key:   "action",
			Value: "marshal_broadcast",
		}, logger.Field{
			Key:   "topic",
			Value: string(topic),
		})
		return
	}

	// snapshot under the read lock so sends run without holding it
	h.mu.RLock()
	subscribers := make([]broadcast.Subscriber, 0, len(h.topics[topic]))
	for sub := range h.topics[topic] {
		subscribers = append(subscribers, sub)
	}
	h.mu.RUnlock()

	var failed []broadcast.Subscriber
	for _, sub := range subscribers {
		if err := sub.Send(payload); err != nil {
			h.logger.Warn("dropping subscriber after failed send", logger.Field{
				Key:   "topic",
				Value: string(topic),
			})
			failed = append(failed, sub)
		}
	}

	for _, sub := range failed {
		h.Unregister(topic, sub)
		h.metrics.BroadcastDropped.WithLabelValues(string(topic)).Inc()
	}

	h.metrics.BroadcastMessages.WithLabelValues(string(topic)).Inc()
}

// SubscriberCount returns the number of subscribers on a topic.
func (h *Hub) SubscriberCount(topic broadcast.Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Stats reports the subscriber count per topic.
func (h *Hub) Stats() map[string]int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := make(map[string]int, len(h.topics))
	for topic, subscribers := range h.topics {
		stats[string(topic)] = len(subscribers)
	}
	return stats
}
