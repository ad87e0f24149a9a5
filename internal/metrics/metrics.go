package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	TicksConsumed  prometheus.Counter
	TicksDropped   *prometheus.CounterVec
	TicksPublished prometheus.Counter

	BroadcastMessages  *prometheus.CounterVec
	BroadcastDropped   *prometheus.CounterVec
	TopicSubscribers   *prometheus.GaugeVec
	AggregatePublishes *prometheus.CounterVec
	AggregateErrors    *prometheus.CounterVec
}

// New creates the metrics set on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		TicksConsumed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fx_ticks_consumed_total",
			Help: "Feed messages persisted to storage.",
		}),
		TicksDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fx_ticks_dropped_total",
			Help: "Feed messages dropped, by reason.",
		}, []string{"reason"}),
		TicksPublished: factory.NewCounter(prometheus.CounterOpts{
			Name: "fx_ticks_published_total",
			Help: "Ticks published onto the Redis feed.",
		}),
		BroadcastMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fx_broadcast_messages_total",
			Help: "Messages fanned out, by topic.",
		}, []string{"topic"}),
		BroadcastDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fx_broadcast_dropped_subscribers_total",
			Help: "Subscribers pruned after a failed send, by topic.",
		}, []string{"topic"}),
		TopicSubscribers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fx_topic_subscribers",
			Help: "Current subscriber count, by topic.",
		}, []string{"topic"}),
		AggregatePublishes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fx_aggregate_publishes_total",
			Help: "Periodic aggregate snapshots published, by granularity.",
		}, []string{"granularity"}),
		AggregateErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fx_aggregate_errors_total",
			Help: "Failed aggregate snapshot loads, by granularity.",
		}, []string{"granularity"}),
	}
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
