package collection

import (
	"encoding/json"

	"github.com/initia-labs/assetfields/fields"
	"github.com/initia-labs/assetfields/types"
)

// Requests
type FieldsRequest struct {
	Collection string
	Fields     []string
}

type FilterRequest struct {
	Collection string
	Nation     string
	Filters    fields.FieldFilters
}

// Responses
type TemplateFieldsResponse struct {
	Collection string                  `json:"collection" extensions:"x-order:0"`
	Fields     []string                `json:"fields" extensions:"x-order:1"`
	Templates  fields.TemplateFieldMap `json:"templates" extensions:"x-order:2"`
}

type SchemaFieldsResponse struct {
	Collection string                `json:"collection" extensions:"x-order:0"`
	Fields     []string              `json:"fields" extensions:"x-order:1"`
	Schemas    fields.SchemaFieldMap `json:"schemas" extensions:"x-order:2"`
}

type AssetsResponse struct {
	Assets []json.RawMessage `json:"assets" swaggertype:"array,object" extensions:"x-order:0"`
	Count  int               `json:"count" extensions:"x-order:1"`
}

func ToAssetsResponse(assets []types.Asset) AssetsResponse {
	raw := make([]json.RawMessage, 0, len(assets))
	for _, asset := range assets {
		raw = append(raw, json.RawMessage(asset))
	}
	return AssetsResponse{
		Assets: raw,
		Count:  len(raw),
	}
}
