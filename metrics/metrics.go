// Package metrics exports adapter events as Prometheus series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/unkn0wn-root/memocache"
)

// Sink counts events by type and observes operation latencies. Register one
// per process and share it across adapters; it is safe for concurrent use.
type Sink struct {
	events  *prometheus.CounterVec
	network *prometheus.HistogramVec
	total   *prometheus.HistogramVec
}

var _ memocache.EventSink = (*Sink)(nil)

// New registers the collectors with reg (use prometheus.DefaultRegisterer
// for the default registry).
func New(reg prometheus.Registerer) *Sink {
	f := promauto.With(reg)
	return &Sink{
		events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "memocache_events_total",
			Help: "Adapter events by type",
		}, []string{"type"}),
		network: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "memocache_network_seconds",
			Help:    "Transport call duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),
		total: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "memocache_total_seconds",
			Help:    "Whole-operation duration, entry to settlement",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),
	}
}

func (s *Sink) Emit(e memocache.Event) {
	t := string(e.Type)
	s.events.WithLabelValues(t).Inc()
	if e.Timers.Network > 0 {
		s.network.WithLabelValues(t).Observe(e.Timers.Network.Seconds())
	}
	if e.Timers.Total > 0 {
		s.total.WithLabelValues(t).Observe(e.Timers.Total.Seconds())
	}
}
