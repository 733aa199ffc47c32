package fields

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/initia-labs/assetfields/config"
	"github.com/initia-labs/assetfields/types"
)

var errUnreachable = errors.New("connection refused")

type fakeExplorer struct {
	schemas     []types.Schema
	templates   map[string][]types.Template
	assets      []types.Asset
	schemaErr   error
	templateErr error
	assetErr    error

	mu            sync.Mutex
	templateCalls []string
	assetParams   []map[string]string
}

func (f *fakeExplorer) ListSchemas(_ context.Context, _ string) ([]types.Schema, error) {
	if f.schemaErr != nil {
		return nil, types.NewLookupFailureError("list schemas", f.schemaErr)
	}
	return f.schemas, nil
}

func (f *fakeExplorer) ListTemplates(_ context.Context, _, schema string) ([]types.Template, error) {
	f.mu.Lock()
	f.templateCalls = append(f.templateCalls, schema)
	f.mu.Unlock()
	if f.templateErr != nil {
		return nil, types.NewLookupFailureError("list templates", f.templateErr)
	}
	return f.templates[schema], nil
}

func (f *fakeExplorer) ListAssets(_ context.Context, params map[string]string) ([]types.Asset, error) {
	f.mu.Lock()
	f.assetParams = append(f.assetParams, params)
	f.mu.Unlock()
	if f.assetErr != nil {
		return nil, types.NewLookupFailureError("list assets", f.assetErr)
	}
	return f.assets, nil
}

func template(id string, data map[string]any) types.Template {
	return types.Template{TemplateID: id, ImmutableData: data}
}

// sampleExplorer is collection "sample": schema S1 owns T1 {timestamp} and
// T2 {nation, year}.
func sampleExplorer() *fakeExplorer {
	return &fakeExplorer{
		schemas: []types.Schema{{SchemaName: "S1"}},
		templates: map[string][]types.Template{
			"S1": {
				template("T1", map[string]any{"timestamp": "t"}),
				template("T2", map[string]any{"nation": "USA", "year": "2020"}),
			},
		},
		assets: []types.Asset{
			types.Asset(`{"asset_id":"1"}`),
			types.Asset(`{"asset_id":"2"}`),
		},
	}
}

func newTestService(exp *fakeExplorer) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(exp, config.DefaultFields, logger)
}
