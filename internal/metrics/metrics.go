// Package metrics exports order viewer submission counters and fetch
// latencies to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-orderviewer/components/orderviewer"
)

const namespace = "orderviewer"

// Metrics implements orderviewer.Observer.
type Metrics struct {
	submissions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	registerer  prometheus.Registerer
}

var _ orderviewer.Observer = (*Metrics)(nil)

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New registers the viewer collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Order lookups by outcome (success, failure, stale).",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent waiting for the order service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		registerer: reg,
	}
	reg.MustRegister(m.submissions, m.latency)
	return m
}

func (m *Metrics) ObserveSubmit(outcome orderviewer.Outcome, elapsed time.Duration) {
	m.submissions.WithLabelValues(string(outcome)).Inc()
	m.latency.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

// TrackSessions exposes count as the live session gauge.
func (m *Metrics) TrackSessions(count func() int) {
	m.registerer.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions",
		Help:      "Browser sessions currently holding a viewer.",
	}, func() float64 {
		return float64(count())
	}))
}

// Handler serves the exposition format for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
