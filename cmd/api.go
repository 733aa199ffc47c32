package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/initia-labs/assetfields/api"
	"github.com/initia-labs/assetfields/config"
	"github.com/initia-labs/assetfields/explorer"
	"github.com/initia-labs/assetfields/fields"
	"github.com/initia-labs/assetfields/log"
	"github.com/initia-labs/assetfields/metrics"
	"github.com/initia-labs/assetfields/sentry_integration"
)

const shutdownTimeout = 10 * time.Second

func apiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Run asset fields API server",
		Long: `
Run the asset fields API server.

This command starts the HTTP API service, exposing field discovery and asset lookups for AtomicAssets collections.

You can configure the explorer endpoint, logging, metrics and server options via environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			logger := log.NewLogger(cfg)

			if err := sentry_integration.Init(cfg); err != nil {
				logger.Error("failed to initialize sentry", slog.String("error", err.Error()))
			}
			defer sentry_integration.Flush()

			metrics.Init(cfg.GetEnvironment())

			client := explorer.NewClient(cfg.GetExplorerConfig(), logger)
			service := fields.NewService(client, cfg.GetDefaultFields(), logger)
			server := api.New(cfg, logger, service)
			metricsServer := metrics.NewServer(cfg, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(server.Start)
			g.Go(metricsServer.Start)

			// graceful shutdown
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := metricsServer.Shutdown(shutdownCtx); err != nil {
					logger.Error("metrics server shutdown failed", slog.String("error", err.Error()))
				}
				return server.Shutdown(shutdownCtx)
			})

			if err := g.Wait(); err != nil {
				sentry_integration.CaptureCurrentHubException(err, sentry.LevelFatal)
				return err
			}
			return nil
		},
	}

	return cmd
}
