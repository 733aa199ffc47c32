package common

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/assetfields/config"
	"github.com/initia-labs/assetfields/fields"
	"github.com/initia-labs/assetfields/metrics"
)

type HandlerRegistrar interface {
	Register(router fiber.Router)
}

type BaseHandler struct {
	service *fields.Service
	cfg     *config.Config
	logger  *slog.Logger
}

func NewBaseHandler(service *fields.Service, cfg *config.Config, logger *slog.Logger) *BaseHandler {
	return &BaseHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

func (h *BaseHandler) GetService() *fields.Service { return h.service }
func (h *BaseHandler) GetConfig() *config.Config   { return h.cfg }
func (h *BaseHandler) GetLogger() *slog.Logger     { return h.logger }

// TrackError tracks errors in handlers
func (h *BaseHandler) TrackError(errorType string) {
	metrics.TrackError("api", errorType)
}
