package common

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/assetfields/config"
	"github.com/initia-labs/assetfields/fields"
)

// FilterQueryPrefix marks query parameters that carry field filters, as in
// ?data.nation=USA&data.year=2020.
const FilterQueryPrefix = "data."

func GetParams(c *fiber.Ctx, key string) (string, error) {
	value := c.Params(key)
	if value == "" {
		return "", fmt.Errorf("missing parameter: %s", key)
	}
	return value, nil
}

func GetCollectionParam(c *fiber.Ctx) (string, error) {
	collection, err := GetParams(c, "collection")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(collection), nil
}

// GetFieldsQuery reads the comma separated fields query. Repeating the key
// (?fields=a&fields=b) is accepted as well.
func GetFieldsQuery(c *fiber.Ctx) []string {
	raw := c.Request().URI().QueryArgs().PeekMulti("fields")
	parts := make([]string, 0, len(raw))
	for _, bytes := range raw {
		parts = append(parts, string(bytes))
	}
	return config.ParseFieldList(strings.Join(parts, ","))
}

// GetFilterQuery collects every data.<field>=<value> query parameter.
func GetFilterQuery(c *fiber.Ctx) (fields.FieldFilters, error) {
	filters := make(fields.FieldFilters)
	var err error
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if !strings.HasPrefix(k, FilterQueryPrefix) {
			return
		}
		field := strings.TrimPrefix(k, FilterQueryPrefix)
		if field == "" {
			err = fmt.Errorf("filter parameter %q has no field name", k)
			return
		}
		filters[field] = fields.ParseFilterValue(string(value))
	})
	if err != nil {
		return nil, err
	}
	return filters, nil
}
