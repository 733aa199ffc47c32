package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	LatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

// ExternalAPIMetrics groups metrics about explorer API calls
type ExternalAPIMetrics struct {
	RequestsTotal    *prometheus.CounterVec
	Latency          *prometheus.HistogramVec
	ConcurrentActive prometheus.Gauge
}

// NewExternalAPIMetrics creates and returns external API metrics
func NewExternalAPIMetrics() *ExternalAPIMetrics {
	return &ExternalAPIMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "assetfields_external_api_requests_total",
				Help:        "Total number of explorer API requests",
				ConstLabels: constLabels(),
			},
			[]string{"endpoint", "status_code"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "assetfields_external_api_latency_seconds",
				Help:        "Explorer API request latency in seconds",
				Buckets:     LatencyBuckets,
				ConstLabels: constLabels(),
			},
			[]string{"endpoint"},
		),
		ConcurrentActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "assetfields_concurrent_requests_active",
				Help:        "Number of currently active explorer API requests",
				ConstLabels: constLabels(),
			},
		),
	}
}

// Register registers all external API metrics with the given registry
func (e *ExternalAPIMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		e.RequestsTotal,
		e.Latency,
		e.ConcurrentActive,
	)
}
