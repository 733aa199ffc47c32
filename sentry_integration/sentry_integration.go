package sentry_integration

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/initia-labs/assetfields/config"
)

// Init configures the global Sentry hub. It is a no-op when no DSN is set.
func Init(cfg *config.Config) error {
	sentryCfg := cfg.GetSentryConfig()
	if sentryCfg == nil {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              sentryCfg.DSN,
		SampleRate:       sentryCfg.SampleRate,
		EnableTracing:    sentryCfg.TracesSampleRate > 0,
		TracesSampleRate: sentryCfg.TracesSampleRate,
		Environment:      sentryCfg.Environment,
		Release:          config.Version,
	})
}

// Flush waits for buffered events to be sent.
func Flush() {
	sentry.Flush(2 * time.Second)
}

func CaptureCurrentHubException(err error, level sentry.Level) {
	CaptureException(sentry.CurrentHub(), err, level)
}

func CaptureException(hub *sentry.Hub, err error, level sentry.Level) {
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		hub.CaptureException(err)
	})
}
