package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/initia-labs/assetfields/config"
)

// Metrics contains all metric groups
type Metrics struct {
	HTTP        *HTTPMetrics
	ExternalAPI *ExternalAPIMetrics
	Error       *ErrorMetrics
}

var (
	// Global registry and metrics
	registry *prometheus.Registry
	metrics  *Metrics

	// Singleton initialization
	initOnce sync.Once

	// Deployment environment for metrics labeling
	environment string
)

// constLabels returns the constant labels to be added to all metrics
func constLabels() prometheus.Labels {
	if environment == "" {
		return nil
	}
	return prometheus.Labels{"environment": environment}
}

// MetricsServer represents the Prometheus metrics HTTP server
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
	cfg    *config.MetricsConfig
}

// Init initializes the Prometheus metrics registry and registers all metrics.
// Only the first call has any effect.
func Init(env string) {
	initOnce.Do(func() {
		environment = env
		registry = prometheus.NewRegistry()

		metrics = &Metrics{
			HTTP:        NewHTTPMetrics(),
			ExternalAPI: NewExternalAPIMetrics(),
			Error:       NewErrorMetrics(),
		}

		metrics.HTTP.Register(registry)
		metrics.ExternalAPI.Register(registry)
		metrics.Error.Register(registry)

		// Add Go runtime metrics
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// NewServer creates a new metrics server
func NewServer(cfg *config.Config, logger *slog.Logger) *MetricsServer {
	metricsConfig := cfg.GetMetricsConfig()
	Init(cfg.GetEnvironment())

	mux := http.NewServeMux()
	mux.Handle(metricsConfig.Path, Handler())

	server := &http.Server{
		Addr:              ":" + metricsConfig.Port,
		Handler:           mux,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return &MetricsServer{
		server: server,
		logger: logger.With("component", "metrics"),
		cfg:    metricsConfig,
	}
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	Init(config.DefaultEnvironment)
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Start starts the metrics server
func (m *MetricsServer) Start() error {
	if !m.cfg.Enabled {
		m.logger.Info("metrics server disabled")
		return nil
	}

	m.logger.Info("starting metrics server",
		slog.String("addr", m.server.Addr),
		slog.String("path", m.cfg.Path))

	if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	if !m.cfg.Enabled {
		return nil
	}

	m.logger.Info("shutting down metrics server")
	return m.server.Shutdown(ctx)
}

// GetMetrics returns the global metrics instance, initializing it on first use.
func GetMetrics() *Metrics {
	Init(config.DefaultEnvironment)
	return metrics
}

// HTTPMetrics returns the HTTP metrics group
func (m *Metrics) HTTPMetrics() *HTTPMetrics {
	return m.HTTP
}

// ExternalAPIMetrics returns the ExternalAPI metrics group
func (m *Metrics) ExternalAPIMetrics() *ExternalAPIMetrics {
	return m.ExternalAPI
}

// ErrorMetrics returns the Error metrics group
func (m *Metrics) ErrorMetrics() *ErrorMetrics {
	return m.Error
}

// Convenience accessors used by the explorer client

func ExternalAPIRequestsTotal() *prometheus.CounterVec {
	return GetMetrics().ExternalAPI.RequestsTotal
}

func ExternalAPILatency() *prometheus.HistogramVec {
	return GetMetrics().ExternalAPI.Latency
}

func ConcurrentRequestsActive() prometheus.Gauge {
	return GetMetrics().ExternalAPI.ConcurrentActive
}
