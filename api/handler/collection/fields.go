package collection

import (
	"github.com/gofiber/fiber/v2"
)

// GetTemplateFields handles GET /fields/v1/collections/{collection}/templates
// @Summary Scan templates for fields
// @Description For every schema of the collection, list the templates whose immutable data carries any of the requested fields
// @Tags Fields
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param fields query string false "Comma separated field names, the configured default list when omitted"
// @Success 200 {object} TemplateFieldsResponse
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Collection has no schemas"
// @Failure 502 {string} string "Explorer lookup failed"
// @Router /fields/v1/collections/{collection}/templates [get]
func (h *CollectionHandler) GetTemplateFields(c *fiber.Ctx) error {
	req, err := ParseFieldsRequest(c, h.GetService().DefaultFields())
	if err != nil {
		return err
	}

	templates, err := h.GetService().ScanTemplates(c.UserContext(), req.Collection, req.Fields)
	if err != nil {
		return h.ServiceError(err)
	}

	return c.JSON(TemplateFieldsResponse{
		Collection: req.Collection,
		Fields:     req.Fields,
		Templates:  templates,
	})
}

// GetSchemaFields handles GET /fields/v1/collections/{collection}/schemas
// @Summary Aggregate fields per schema
// @Description List, per schema, the union of requested fields found on its templates
// @Tags Fields
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param fields query string false "Comma separated field names, the configured default list when omitted"
// @Success 200 {object} SchemaFieldsResponse
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Collection has no schemas"
// @Failure 502 {string} string "Explorer lookup failed"
// @Router /fields/v1/collections/{collection}/schemas [get]
func (h *CollectionHandler) GetSchemaFields(c *fiber.Ctx) error {
	req, err := ParseFieldsRequest(c, h.GetService().DefaultFields())
	if err != nil {
		return err
	}

	schemas, err := h.GetService().AggregateSchemas(c.UserContext(), req.Collection, req.Fields)
	if err != nil {
		return h.ServiceError(err)
	}

	return c.JSON(SchemaFieldsResponse{
		Collection: req.Collection,
		Fields:     req.Fields,
		Schemas:    schemas,
	})
}
