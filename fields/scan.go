package fields

import (
	"context"
	"log/slog"

	"github.com/initia-labs/assetfields/types"
)

// ScanTemplates reports, per schema and template, which of fields appear in
// the template's immutable data. Templates without any match are left out.
// An empty fields list scans for the default fields.
func (s *Service) ScanTemplates(ctx context.Context, collection string, fields []string) (TemplateFieldMap, error) {
	res, err := s.scan(ctx, collection, s.fieldsOrDefault(fields))
	if err != nil {
		return nil, s.fail("scan templates", collection, err)
	}
	return res, nil
}

func (s *Service) scan(ctx context.Context, collection string, fields []string) (TemplateFieldMap, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	s.logger.Info("scanning templates", slog.String("collection", collection), slog.Any("fields", fields))

	schemas, err := s.explorer.ListSchemas(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(schemas) == 0 {
		return nil, types.NewEmptyResultError("schemas", collection)
	}

	res := make(TemplateFieldMap)
	for _, schema := range schemas {
		templates, err := s.explorer.ListTemplates(ctx, collection, schema.SchemaName)
		if err != nil {
			return nil, err
		}

		for _, template := range templates {
			found := presentFields(fields, template.ImmutableData)
			if len(found) == 0 {
				continue
			}
			if res[schema.SchemaName] == nil {
				res[schema.SchemaName] = make(map[string][]string)
			}
			res[schema.SchemaName][template.TemplateID] = found
			s.logger.Debug("template fields found",
				slog.String("schema", schema.SchemaName),
				slog.String("template_id", template.TemplateID),
				slog.Any("fields", found))
		}
	}

	s.logger.Info("scanned templates",
		slog.String("collection", collection),
		slog.Int("schemas", len(schemas)),
		slog.Int("matching_schemas", len(res)))
	return res, nil
}

// presentFields keeps the entries of fields that are keys of data, in the
// order of fields.
func presentFields(fields []string, data map[string]any) []string {
	var found []string
	for _, f := range fields {
		if _, ok := data[f]; ok {
			found = append(found, f)
		}
	}
	return found
}
