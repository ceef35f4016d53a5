package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	DecodesTotal     *prometheus.CounterVec
	ValidationsTotal *prometheus.CounterVec
	BatchSize        prometheus.Histogram
	EndpointLatency  *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the given registerer.
// Passing prometheus.NewRegistry() keeps tests isolated from the default
// registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DecodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nidx_decodes_total",
			Help: "Total number of decode calls, labeled by country and outcome",
		}, []string{"country", "outcome"}),
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nidx_validations_total",
			Help: "Total number of validate calls, labeled by country and verdict",
		}, []string{"country", "verdict"}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "nidx_batch_size",
			Help:    "Number of codes per batch validation request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nidx_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
