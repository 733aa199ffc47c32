package api

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"

	"github.com/initia-labs/assetfields/api/docs"
	"github.com/initia-labs/assetfields/api/handler"
	"github.com/initia-labs/assetfields/config"
	"github.com/initia-labs/assetfields/fields"
	"github.com/initia-labs/assetfields/metrics"
)

type Api struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *fields.Service
	app     *fiber.App
}

func New(cfg *config.Config, logger *slog.Logger, service *fields.Service) *Api {
	a := &Api{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
	a.app = a.newApp()
	return a
}

// @title Asset Fields API
// @version 1.0
// @description Discover AtomicAssets templates by immutable data fields and fetch their assets
// @BasePath /

// @tag.name App
// @tag.description Service health

// @tag.name Fields
// @tag.description Template and schema field discovery

// @tag.name Assets
// @tag.description Asset lookups by discovered fields or filters
func (a *Api) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Asset Fields API",
		DisableStartupMessage: true,
		UnescapePath:          true,
		ReadTimeout:           30 * time.Second,
	})

	app.Use(metricsMiddleware())
	app.Get("/health", health)

	handler.Register(app, a.service, a.cfg, a.logger)

	// Swagger documentation
	swaggerConfig := swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
		TagsSorter: template.JS(`function(a, b) {
			const order = ["Fields", "Assets", "App"];
			return order.indexOf(a) - order.indexOf(b);
		}`),
	}

	app.Get("/swagger/*", swagger.New(swaggerConfig))

	return app
}

// App exposes the fiber app, mainly for tests.
func (a *Api) App() *fiber.App {
	return a.app
}

func (a *Api) Start() error {
	port := a.cfg.GetListenPort()

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", port)
	docs.SwaggerInfo.Title = "Asset Fields API"
	docs.SwaggerInfo.Version = config.Version

	a.logger.Info("starting API server", slog.String("addr", fmt.Sprintf("http://localhost:%s", port)))

	return a.app.Listen(":" + port)
}

func (a *Api) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down API server")
	return a.app.ShutdownWithContext(ctx)
}

// health handles GET /health
// @Summary Health check
// @Tags App
// @Success 200 "OK"
// @Router /health [get]
func health(c *fiber.Ctx) error {
	return c.SendString("OK")
}

func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		httpMetrics := metrics.GetMetrics().HTTPMetrics()
		httpMetrics.RequestsInFlight.Inc()
		defer httpMetrics.RequestsInFlight.Dec()

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		// Label values outlive the request, so none may alias fiber's
		// reused request buffers.
		method := utils.CopyString(c.Method())
		pattern := metrics.GetHandlerPattern(c.Route().Path)
		elapsed := time.Since(start).Seconds()

		httpMetrics.RequestsTotal.WithLabelValues(method, pattern, metrics.GetStatusClass(status)).Inc()
		httpMetrics.RequestDuration.WithLabelValues(method, pattern).Observe(elapsed)
		if bucket := metrics.GetDurationBucket(elapsed); bucket != "" {
			httpMetrics.SlowRequests.WithLabelValues(method, pattern, bucket).Inc()
		}

		return err
	}
}
