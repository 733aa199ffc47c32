package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPLatencyBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
)

// HTTPMetrics groups HTTP-related metrics
type HTTPMetrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Requests slower than a second, bucketed for troubleshooting
	SlowRequests *prometheus.CounterVec
}

// NewHTTPMetrics creates and returns HTTP metrics
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "assetfields_http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels(),
			},
			[]string{"method", "handler", "status_class"}, // status_class: 2xx, 3xx, 4xx, 5xx
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "assetfields_http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     HTTPLatencyBuckets,
				ConstLabels: constLabels(),
			},
			[]string{"method", "handler"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "assetfields_http_requests_in_flight",
				Help:        "Number of HTTP requests currently being processed",
				ConstLabels: constLabels(),
			},
		),
		SlowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "assetfields_http_slow_requests_total",
				Help:        "Total number of slow requests (>1s) by handler",
				ConstLabels: constLabels(),
			},
			[]string{"method", "handler", "duration_bucket"}, // "1-2s", "2-5s", "5s+"
		),
	}
}

// Register registers all HTTP metrics with the given registry
func (h *HTTPMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		h.RequestsTotal,
		h.RequestDuration,
		h.RequestsInFlight,
		h.SlowRequests,
	)
}

// GetStatusClass converts HTTP status code to class (2xx, 3xx, 4xx, 5xx)
func GetStatusClass(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "other"
	}
}

// handlerPatterns maps registered route patterns to handler labels.
var handlerPatterns = map[string]string{
	"/health":    "health",
	"/swagger/*": "swagger",

	"/fields/v1/collections/:collection/templates":                "templates",
	"/fields/v1/collections/:collection/schemas":                  "schemas",
	"/fields/v1/collections/:collection/assets/by_fields":         "assets_by_fields",
	"/fields/v1/collections/:collection/assets/by_filter":         "assets_by_filter",
	"/fields/v1/collections/:collection/assets/by_nation/:nation": "assets_by_nation",
}

// GetHandlerPattern converts a matched route pattern to a handler label.
// Anything not registered, unmatched requests included, is "other", which
// keeps the label set bounded.
func GetHandlerPattern(route string) string {
	if pattern, ok := handlerPatterns[route]; ok {
		return pattern
	}
	return "other"
}

// GetDurationBucket categorizes request duration for slow request tracking
func GetDurationBucket(seconds float64) string {
	switch {
	case seconds < 1:
		return "" // Don't track fast requests
	case seconds < 2:
		return "1-2s"
	case seconds < 5:
		return "2-5s"
	default:
		return "5s+"
	}
}
