package collection

import (
	"github.com/gofiber/fiber/v2"
)

// GetAssetsByFields handles GET /fields/v1/collections/{collection}/assets/by_fields
// @Summary Get assets of templates carrying fields
// @Description Discover the templates carrying any of the requested fields and return the assets minted from them
// @Tags Assets
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param fields query string false "Comma separated field names, the configured default list when omitted"
// @Success 200 {object} AssetsResponse
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Collection has no schemas"
// @Failure 502 {string} string "Explorer lookup failed or returned no asset list"
// @Router /fields/v1/collections/{collection}/assets/by_fields [get]
func (h *CollectionHandler) GetAssetsByFields(c *fiber.Ctx) error {
	req, err := ParseFieldsRequest(c, h.GetService().DefaultFields())
	if err != nil {
		return err
	}

	assets, err := h.GetService().FetchByDiscoveredFields(c.UserContext(), req.Collection, req.Fields)
	if err != nil {
		return h.ServiceError(err)
	}

	return c.JSON(ToAssetsResponse(assets))
}

// GetAssetsByFilter handles GET /fields/v1/collections/{collection}/assets/by_filter
// @Summary Get assets by immutable data filters
// @Description Filter assets on immutable data values given as data.{field}={value} query parameters. Wrap a value in double quotes to match it as text.
// @Tags Assets
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param data.nation query string false "Example filter on the nation field"
// @Success 200 {object} AssetsResponse
// @Failure 400 {string} string "Bad request"
// @Failure 502 {string} string "Explorer lookup failed or returned no asset list"
// @Router /fields/v1/collections/{collection}/assets/by_filter [get]
func (h *CollectionHandler) GetAssetsByFilter(c *fiber.Ctx) error {
	req, err := ParseFilterRequest(c)
	if err != nil {
		return err
	}

	assets, err := h.GetService().FetchByFieldFilters(c.UserContext(), req.Collection, req.Filters)
	if err != nil {
		return h.ServiceError(err)
	}

	return c.JSON(ToAssetsResponse(assets))
}

// GetAssetsByNation handles GET /fields/v1/collections/{collection}/assets/by_nation/{nation}
// @Summary Get assets of a nation
// @Description Filter assets on the upper-cased nation field, combined with optional data.{field}={value} filters
// @Tags Assets
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param nation path string true "Nation code, upper-cased before matching"
// @Success 200 {object} AssetsResponse
// @Failure 400 {string} string "Bad request"
// @Failure 502 {string} string "Explorer lookup failed or returned no asset list"
// @Router /fields/v1/collections/{collection}/assets/by_nation/{nation} [get]
func (h *CollectionHandler) GetAssetsByNation(c *fiber.Ctx) error {
	req, err := ParseNationRequest(c)
	if err != nil {
		return err
	}

	assets, err := h.GetService().FetchByNation(c.UserContext(), req.Collection, req.Nation, req.Filters)
	if err != nil {
		return h.ServiceError(err)
	}

	return c.JSON(ToAssetsResponse(assets))
}
