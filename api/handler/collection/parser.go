package collection

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/assetfields/api/handler/common"
)

func ParseFieldsRequest(c *fiber.Ctx, defaultFields []string) (*FieldsRequest, error) {
	collection, err := common.GetCollectionParam(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req := &FieldsRequest{
		Collection: collection,
		Fields:     common.GetFieldsQuery(c),
	}
	if len(req.Fields) == 0 {
		req.Fields = defaultFields
	}

	return req, nil
}

func ParseFilterRequest(c *fiber.Ctx) (*FilterRequest, error) {
	collection, err := common.GetCollectionParam(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	filters, err := common.GetFilterQuery(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return &FilterRequest{
		Collection: collection,
		Filters:    filters,
	}, nil
}

func ParseNationRequest(c *fiber.Ctx) (*FilterRequest, error) {
	req, err := ParseFilterRequest(c)
	if err != nil {
		return nil, err
	}

	nation, err := common.GetParams(c, "nation")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Nation = strings.TrimSpace(nation)
	if req.Nation == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "nation param is required")
	}

	return req, nil
}
