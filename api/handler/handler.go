package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/assetfields/api/handler/collection"
	"github.com/initia-labs/assetfields/api/handler/common"
	"github.com/initia-labs/assetfields/config"
	"github.com/initia-labs/assetfields/fields"
)

func Register(router fiber.Router, service *fields.Service, cfg *config.Config, logger *slog.Logger) {
	base := common.NewBaseHandler(service, cfg, logger)
	handlers := []common.HandlerRegistrar{
		collection.NewCollectionHandler(base),
	}

	for _, handler := range handlers {
		handler.Register(router)
	}
}
