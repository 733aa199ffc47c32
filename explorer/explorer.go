// Package explorer talks to the AtomicAssets explorer REST API.
package explorer

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/assetfields/config"
	"github.com/initia-labs/assetfields/types"
)

const (
	schemasPath   = "/v1/schemas"
	templatesPath = "/v1/templates"
	assetsPath    = "/v1/assets"
)

// Explorer is the subset of the explorer API the field service depends on.
type Explorer interface {
	ListSchemas(ctx context.Context, collection string) ([]types.Schema, error)
	ListTemplates(ctx context.Context, collection, schema string) ([]types.Template, error)
	// ListAssets issues a single asset query. A nil slice means the response
	// carried no asset list at all.
	ListAssets(ctx context.Context, params map[string]string) ([]types.Asset, error)
}

// Client is the HTTP implementation of Explorer. It is safe for concurrent use.
type Client struct {
	client   *fiber.Client
	cfg      *config.ExplorerConfig
	basePath string
	logger   *slog.Logger
}

var _ Explorer = (*Client)(nil)

func NewClient(cfg *config.ExplorerConfig, logger *slog.Logger) *Client {
	return &Client{
		client:   fiber.AcquireClient(),
		cfg:      cfg,
		basePath: cfg.BasePath(),
		logger:   logger.With("component", "explorer"),
	}
}

func (c *Client) ListSchemas(ctx context.Context, collection string) ([]types.Schema, error) {
	params := map[string]string{"collection_name": collection}
	schemas, err := fetchAllPages[types.Schema](ctx, c, schemasPath, params)
	if err != nil {
		return nil, types.NewLookupFailureError("list schemas", err)
	}

	c.logger.Debug("listed schemas", slog.String("collection", collection), slog.Int("count", len(schemas)))
	return schemas, nil
}

func (c *Client) ListTemplates(ctx context.Context, collection, schema string) ([]types.Template, error) {
	params := map[string]string{
		"collection_name": collection,
		"schema_name":     schema,
	}
	templates, err := fetchAllPages[types.Template](ctx, c, templatesPath, params)
	if err != nil {
		return nil, types.NewLookupFailureError("list templates", err)
	}

	for i := range templates {
		if templates[i].SchemaName == "" {
			templates[i].SchemaName = schema
		}
	}

	c.logger.Debug("listed templates",
		slog.String("collection", collection),
		slog.String("schema", schema),
		slog.Int("count", len(templates)))
	return templates, nil
}

func (c *Client) ListAssets(ctx context.Context, params map[string]string) ([]types.Asset, error) {
	body, err := c.get(ctx, assetsPath, params)
	if err != nil {
		return nil, types.NewLookupFailureError("list assets", err)
	}

	res, err := decodeResponse[types.Asset](body)
	if err != nil {
		return nil, types.NewLookupFailureError("list assets", err)
	}

	c.logger.Debug("listed assets", slog.Int("count", len(res.Data)))
	return res.Data, nil
}

// fetchAllPages walks a paged listing endpoint until a short page comes back
// or the configured page cap is hit.
func fetchAllPages[T any](ctx context.Context, c *Client, path string, params map[string]string) ([]T, error) {
	var all []T
	limit := c.cfg.PageLimit

	for page := 1; page <= c.cfg.MaxPages; page++ {
		pageParams := make(map[string]string, len(params)+4)
		for k, v := range params {
			pageParams[k] = v
		}
		pageParams["page"] = strconv.Itoa(page)
		pageParams["limit"] = strconv.Itoa(limit)
		pageParams["order"] = "asc"
		pageParams["sort"] = "created"

		body, err := c.get(ctx, path, pageParams)
		if err != nil {
			return nil, err
		}

		res, err := decodeResponse[T](body)
		if err != nil {
			return nil, err
		}

		all = append(all, res.Data...)
		if len(res.Data) < limit {
			return all, nil
		}
	}

	c.logger.Warn("page cap reached, listing may be truncated",
		slog.String("path", path),
		slog.Int("max_pages", c.cfg.MaxPages))
	return all, nil
}
