package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK        = "ok"
	outcomeStatus    = "status_error"
	outcomeTransport = "transport_error"
)

// Metrics holds the request counters of one client. Each client owns its own
// registry so several clients never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	// requests counts calls by endpoint and outcome.
	// Labels: endpoint (suggest, tags), outcome (ok, status_error, transport_error)
	requests *prometheus.CounterVec

	// latency measures round trips by endpoint.
	latency *prometheus.HistogramVec
}

// NewMetrics builds a registry with the client request collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tagdeck",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total API requests by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tagdeck",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API round trip latency",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"endpoint"}),
	}
	m.Registry.MustRegister(m.requests, m.latency)
	return m
}

// WriteTextfile dumps the registry in text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// Requests returns the counter for an endpoint and outcome.
func (m *Metrics) Requests(endpoint, outcome string) prometheus.Counter {
	return m.requests.WithLabelValues(endpoint, outcome)
}

func (m *Metrics) observe(endpoint, outcome string, elapsed time.Duration) {
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.latency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
