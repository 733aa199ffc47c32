package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/initia-labs/assetfields/types"
)

func TestAggregateSchemas_SampleScenario(t *testing.T) {
	s := newTestService(sampleExplorer())

	res, err := s.AggregateSchemas(context.Background(), "sample", nil)
	require.NoError(t, err)

	require.Contains(t, res, "S1")
	assert.ElementsMatch(t, []string{"timestamp", "nation", "year"}, res["S1"])
}

func TestAggregateSchemas_NeverEmptyForScannedSchema(t *testing.T) {
	exp := &fakeExplorer{
		schemas: []types.Schema{{SchemaName: "a"}, {SchemaName: "b"}, {SchemaName: "c"}},
		templates: map[string][]types.Template{
			"a": {
				template("2", map[string]any{"city": "x", "year": 1}),
				template("1", map[string]any{"year": 2, "day": 3}),
			},
			"b": {template("3", map[string]any{"geotag": "1,2"})},
			"c": {template("4", map[string]any{"unrelated": true})},
		},
	}
	s := newTestService(exp)

	scanned, err := s.ScanTemplates(context.Background(), "sample", nil)
	require.NoError(t, err)
	aggregated, err := s.AggregateSchemas(context.Background(), "sample", nil)
	require.NoError(t, err)

	assert.Len(t, aggregated, len(scanned))
	for schema := range scanned {
		assert.NotEmpty(t, aggregated[schema], schema)
	}
	assert.NotContains(t, aggregated, "c")

	// templates are walked by ascending id, so "1" contributes first
	assert.Equal(t, []string{"year", "day", "city"}, aggregated["a"])
}

func TestAggregateSchemas_PropagatesScanFailure(t *testing.T) {
	s := newTestService(&fakeExplorer{})

	res, err := s.AggregateSchemas(context.Background(), "sample", nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, types.IsErrorType(err, types.ErrTypeEmptyResult))
}

func TestAggregate_Deduplicates(t *testing.T) {
	res := Aggregate(TemplateFieldMap{
		"s": {
			"1": {"nation", "year"},
			"2": {"year", "city"},
			"3": {"nation"},
		},
	})
	assert.Equal(t, SchemaFieldMap{"s": {"nation", "year", "city"}}, res)
}

func TestSortedTemplateIDs(t *testing.T) {
	ids := sortedTemplateIDs(map[string][]string{
		"100": nil, "20": nil, "3": nil, "abc": nil, "T1": nil,
	})
	assert.Equal(t, []string{"3", "20", "100", "T1", "abc"}, ids)
}
