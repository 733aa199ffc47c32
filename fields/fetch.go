package fields

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/initia-labs/assetfields/types"
)

var errEmptyFilterField = types.NewBadRequestError("filter field name must not be empty")

// FetchByDiscoveredFields returns the collection's assets minted from any
// template that carries at least one of fields. When no template matches it
// returns an empty slice without querying assets.
func (s *Service) FetchByDiscoveredFields(ctx context.Context, collection string, fields []string) ([]types.Asset, error) {
	scanned, err := s.scan(ctx, collection, s.fieldsOrDefault(fields))
	if err != nil {
		return nil, s.fail("fetch by discovered fields", collection, err)
	}

	ids := s.templateIDs(scanned)
	if len(ids) == 0 {
		s.logger.Info("no templates found with the requested fields", slog.String("collection", collection))
		return []types.Asset{}, nil
	}

	assets, err := s.listAssets(ctx, map[string]string{
		paramCollectionName: collection,
		paramTemplateIDs:    strings.Join(ids, ","),
	})
	if err != nil {
		return nil, s.fail("fetch by discovered fields", collection, err)
	}
	return assets, nil
}

// FetchByFieldFilters returns the collection's assets whose data matches
// every filter.
func (s *Service) FetchByFieldFilters(ctx context.Context, collection string, filters FieldFilters) ([]types.Asset, error) {
	assets, err := s.fetchFiltered(ctx, collection, "", filters)
	if err != nil {
		return nil, s.fail("fetch by field filters", collection, err)
	}
	return assets, nil
}

// FetchByNation is FetchByFieldFilters with an extra upper-cased nation
// filter. An empty nation adds nothing.
func (s *Service) FetchByNation(ctx context.Context, collection, nation string, filters FieldFilters) ([]types.Asset, error) {
	assets, err := s.fetchFiltered(ctx, collection, nation, filters)
	if err != nil {
		return nil, s.fail("fetch by nation", collection, err)
	}
	return assets, nil
}

func (s *Service) fetchFiltered(ctx context.Context, collection, nation string, filters FieldFilters) ([]types.Asset, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	params := BuildNationFilterParams(nation, filters)
	s.logger.Info("constructed filter parameters",
		slog.String("collection", collection),
		slog.String("nation", nation),
		slog.Any("params", params))

	params[paramCollectionName] = collection
	return s.listAssets(ctx, params)
}

func (s *Service) listAssets(ctx context.Context, params map[string]string) ([]types.Asset, error) {
	assets, err := s.explorer.ListAssets(ctx, params)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		return nil, types.NewMalformedResultError("NFT data could not be parsed")
	}

	s.logger.Info("retrieved assets", slog.Int("count", len(assets)))
	return assets, nil
}

// templateIDs flattens the scan into one id list: schemas by name, ids
// ascending within a schema. An id listed under two schemas is kept once.
func (s *Service) templateIDs(scanned TemplateFieldMap) []string {
	schemas := make([]string, 0, len(scanned))
	for schema := range scanned {
		schemas = append(schemas, schema)
	}
	sort.Strings(schemas)

	owner := make(map[string]string)
	var ids []string
	for _, schema := range schemas {
		for _, id := range sortedTemplateIDs(scanned[schema]) {
			if first, ok := owner[id]; ok {
				s.logger.Warn("template id listed under several schemas",
					slog.String("template_id", id),
					slog.String("first_schema", first),
					slog.String("schema", schema))
				continue
			}
			owner[id] = schema
			ids = append(ids, id)
		}
	}
	return ids
}
