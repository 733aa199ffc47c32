package fields

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
)

// AggregateSchemas folds the per-template scan into one distinct field list
// per schema. Fields keep the order in which they were first seen, walking
// templates by ascending id.
func (s *Service) AggregateSchemas(ctx context.Context, collection string, fields []string) (SchemaFieldMap, error) {
	scanned, err := s.scan(ctx, collection, s.fieldsOrDefault(fields))
	if err != nil {
		return nil, s.fail("aggregate schemas", collection, err)
	}

	res := Aggregate(scanned)
	s.logger.Info("aggregated schema fields", slog.String("collection", collection), slog.Any("schemas", res))
	return res, nil
}

// Aggregate reduces a TemplateFieldMap to a SchemaFieldMap.
func Aggregate(scanned TemplateFieldMap) SchemaFieldMap {
	res := make(SchemaFieldMap, len(scanned))
	for schema, templates := range scanned {
		seen := make(map[string]struct{})
		var merged []string
		for _, id := range sortedTemplateIDs(templates) {
			for _, f := range templates[id] {
				if _, ok := seen[f]; ok {
					continue
				}
				seen[f] = struct{}{}
				merged = append(merged, f)
			}
		}
		if len(merged) > 0 {
			res[schema] = merged
		}
	}
	return res
}

// sortedTemplateIDs orders numeric ids by value, followed by any other ids in
// lexical order.
func sortedTemplateIDs(templates map[string][]string) []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.ParseUint(ids[i], 10, 64)
		b, errB := strconv.ParseUint(ids[j], 10, 64)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}
