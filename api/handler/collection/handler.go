package collection

import (
	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/assetfields/api/handler/common"
)

type CollectionHandler struct {
	*common.BaseHandler
}

var _ common.HandlerRegistrar = (*CollectionHandler)(nil)

func NewCollectionHandler(base *common.BaseHandler) *CollectionHandler {
	return &CollectionHandler{BaseHandler: base}
}

func (h *CollectionHandler) Register(router fiber.Router) {
	collections := router.Group("/fields/v1/collections/:collection")

	// Field discovery routes
	collections.Get("/templates", h.GetTemplateFields)
	collections.Get("/schemas", h.GetSchemaFields)

	// Asset routes
	assets := collections.Group("/assets")
	assets.Get("/by_fields", h.GetAssetsByFields)
	assets.Get("/by_filter", h.GetAssetsByFilter)
	assets.Get("/by_nation/:nation", h.GetAssetsByNation)
}
