package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/initia-labs/assetfields/types"
)

var (
	Version    = "dev"
	CommitHash = "unknown"

	// Singleton instance
	configInstance *Config
	configOnce     sync.Once
)

// Default configuration constants
const (
	// Port settings
	DefaultAPIPort     = "8080"
	DefaultMetricsPort = "9090"
	MinPortNumber      = 1
	MaxPortNumber      = 65535

	// Explorer settings
	DefaultExplorerURL       = "https://wax.api.atomicassets.io"
	DefaultExplorerNamespace = "atomicassets"
	DefaultQueryTimeout      = 30 * time.Second
	DefaultPageLimit         = 100
	MaxPageLimit             = 1000
	DefaultMaxPages          = 50

	// Metrics settings
	DefaultMetricsPath = "/metrics"

	// Default environment
	DefaultEnvironment = "local"
)

// DefaultFields is the field list scanned for when a caller names none.
var DefaultFields = []string{"timestamp", "date", "year", "month", "day", "location", "nation", "state", "city", "geotag"}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
	Port    string `json:"port"`
}

// SentryConfig contains configuration for Sentry integration
type SentryConfig struct {
	DSN              string  `json:"dsn"`
	SampleRate       float64 `json:"sample_rate"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Environment      string  `json:"environment"`
}

func SetBuildInfo(v, commit string) {
	Version = v
	CommitHash = commit
}

type Config struct {
	listenPort     string
	logLevel       string
	logFormat      string
	environment    string
	defaultFields  []string
	explorerConfig *ExplorerConfig
	metricsConfig  *MetricsConfig
	sentryConfig   *SentryConfig
}

func setDefaults() {
	viper.SetDefault("PORT", DefaultAPIPort)
	viper.SetDefault("LOG_LEVEL", "warn")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("EXPLORER_URL", DefaultExplorerURL)
	viper.SetDefault("EXPLORER_NAMESPACE", DefaultExplorerNamespace)
	viper.SetDefault("QUERY_TIMEOUT", DefaultQueryTimeout)
	viper.SetDefault("PAGE_LIMIT", DefaultPageLimit)
	viper.SetDefault("MAX_PAGES", DefaultMaxPages)
	viper.SetDefault("DEFAULT_FIELDS", strings.Join(DefaultFields, ","))
	viper.SetDefault("METRICS_ENABLED", false)
	viper.SetDefault("METRICS_PATH", DefaultMetricsPath)
	viper.SetDefault("METRICS_PORT", DefaultMetricsPort)
	viper.SetDefault("ENVIRONMENT", DefaultEnvironment)

	// Sentry defaults
	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("SENTRY_SAMPLE_RATE", 0.01)
	viper.SetDefault("SENTRY_TRACES_SAMPLE_RATE", 0.01)
}

func GetConfig() (*Config, error) {
	var err error

	configOnce.Do(func() {
		configInstance, err = loadConfig()
	})

	return configInstance, err
}

func loadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// just log without panic, local testing purpose only
		fmt.Fprintln(os.Stderr, "No .env file found")
	}
	viper.AutomaticEnv()
	setDefaults()

	config := &Config{
		listenPort:    viper.GetString("PORT"),
		logLevel:      viper.GetString("LOG_LEVEL"),
		logFormat:     viper.GetString("LOG_FORMAT"),
		environment:   viper.GetString("ENVIRONMENT"),
		defaultFields: ParseFieldList(viper.GetString("DEFAULT_FIELDS")),
		explorerConfig: &ExplorerConfig{
			URL:          viper.GetString("EXPLORER_URL"),
			Namespace:    viper.GetString("EXPLORER_NAMESPACE"),
			QueryTimeout: viper.GetDuration("QUERY_TIMEOUT"),
			PageLimit:    viper.GetInt("PAGE_LIMIT"),
			MaxPages:     viper.GetInt("MAX_PAGES"),
		},
		metricsConfig: &MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Path:    viper.GetString("METRICS_PATH"),
			Port:    viper.GetString("METRICS_PORT"),
		},
		sentryConfig: &SentryConfig{
			DSN:              viper.GetString("SENTRY_DSN"),
			SampleRate:       viper.GetFloat64("SENTRY_SAMPLE_RATE"),
			TracesSampleRate: viper.GetFloat64("SENTRY_TRACES_SAMPLE_RATE"),
			Environment:      viper.GetString("ENVIRONMENT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ParseFieldList splits a comma separated field list, dropping blanks and
// repeated names.
func ParseFieldList(raw string) []string {
	var fields []string
	seen := make(map[string]struct{})
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	return fields
}

func (c Config) GetListenPort() string {
	return c.listenPort
}

// SetListenPort assigns the API port for testing purposes.
func (c *Config) SetListenPort(port string) {
	c.listenPort = port
}

func (c Config) GetEnvironment() string {
	if c.environment == "" {
		return DefaultEnvironment
	}
	return c.environment
}

func (c Config) GetExplorerConfig() *ExplorerConfig {
	return c.explorerConfig
}

// SetExplorerConfig assigns the explorer config for testing purposes.
func (c *Config) SetExplorerConfig(explorerCfg *ExplorerConfig) {
	c.explorerConfig = explorerCfg
}

// GetDefaultFields returns a copy of the configured default field list.
func (c Config) GetDefaultFields() []string {
	if len(c.defaultFields) == 0 {
		return append([]string(nil), DefaultFields...)
	}
	return append([]string(nil), c.defaultFields...)
}

// SetDefaultFields assigns the default field list for testing purposes.
func (c *Config) SetDefaultFields(fields []string) {
	c.defaultFields = fields
}

func (c Config) GetMetricsConfig() *MetricsConfig {
	return c.metricsConfig
}

// SetMetricsConfig assigns the metrics config for testing purposes.
func (c *Config) SetMetricsConfig(metricsCfg *MetricsConfig) {
	c.metricsConfig = metricsCfg
}

func (c Config) GetSentryConfig() *SentryConfig {
	if c.sentryConfig == nil || c.sentryConfig.DSN == "" {
		return nil
	}
	return c.sentryConfig
}

func (c Config) GetLogLevel() slog.Level {
	switch c.logLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (c Config) GetLogFormat() string {
	if c.logFormat == "json" {
		return "json"
	}
	return "plain"
}

// SetLogSettings assigns log level and format for testing purposes.
func (c *Config) SetLogSettings(level, format string) {
	c.logLevel = level
	c.logFormat = format
}

func (c Config) Validate() error {
	if err := c.validatePort(); err != nil {
		return err
	}
	if err := c.validateLogSettings(); err != nil {
		return err
	}
	if len(c.defaultFields) == 0 {
		return types.NewValidationError("DEFAULT_FIELDS", "must name at least one field")
	}
	if err := c.validateMetricsConfig(); err != nil {
		return err
	}
	if c.explorerConfig == nil {
		return types.NewValidationError("EXPLORER_URL", "required field is missing")
	}
	return c.explorerConfig.Validate()
}

// validatePort validates the listen port configuration
func (c Config) validatePort() error {
	if len(c.listenPort) == 0 {
		return types.NewValidationError("PORT", "required field is missing")
	}
	if port, err := strconv.Atoi(c.listenPort); err != nil || port < MinPortNumber || port > MaxPortNumber {
		return types.NewValidationError("PORT", fmt.Sprintf("must be a valid port number (%d-%d)", MinPortNumber, MaxPortNumber))
	}
	return nil
}

// validateLogSettings validates log format and level configuration
func (c Config) validateLogSettings() error {
	switch c.logFormat {
	case "json", "plain":
		break
	default:
		return types.NewValidationError("LOG_FORMAT", fmt.Sprintf("invalid value '%s', must be 'json' or 'plain'", c.logFormat))
	}

	switch c.logLevel {
	case "debug", "info", "warn", "error":
		break
	default:
		return types.NewValidationError("LOG_LEVEL", fmt.Sprintf("invalid value '%s', must be one of: debug, info, warn, error", c.logLevel))
	}
	return nil
}

// validateMetricsConfig validates metrics configuration
func (c Config) validateMetricsConfig() error {
	if c.metricsConfig == nil || !c.metricsConfig.Enabled {
		return nil
	}
	if port, err := strconv.Atoi(c.metricsConfig.Port); err != nil || port < MinPortNumber || port > MaxPortNumber {
		return types.NewValidationError("METRICS_PORT", fmt.Sprintf("must be a valid port number (%d-%d)", MinPortNumber, MaxPortNumber))
	}
	if c.metricsConfig.Port == c.listenPort {
		return types.NewValidationError("METRICS_PORT", fmt.Sprintf("metrics port %s conflicts with API port", c.metricsConfig.Port))
	}
	if c.metricsConfig.Path == "" || c.metricsConfig.Path[0] != '/' {
		return types.NewValidationError("METRICS_PATH", "must start with '/'")
	}
	return nil
}
