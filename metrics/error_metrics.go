package metrics

import "github.com/prometheus/client_golang/prometheus"

// ErrorMetrics groups error tracking metrics
type ErrorMetrics struct {
	ErrorsTotal *prometheus.CounterVec
}

// NewErrorMetrics creates and returns error tracking metrics
func NewErrorMetrics() *ErrorMetrics {
	return &ErrorMetrics{
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "assetfields_errors_total",
				Help:        "Total number of errors by component and type",
				ConstLabels: constLabels(),
			},
			[]string{"component", "error_type"},
		),
	}
}

// Register registers all error metrics with the given registry
func (e *ErrorMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(e.ErrorsTotal)
}
