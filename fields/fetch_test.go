package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/initia-labs/assetfields/types"
)

func TestFetchByDiscoveredFields(t *testing.T) {
	exp := sampleExplorer()
	s := newTestService(exp)

	assets, err := s.FetchByDiscoveredFields(context.Background(), "sample", nil)
	require.NoError(t, err)
	assert.Equal(t, exp.assets, assets)

	require.Len(t, exp.assetParams, 1)
	assert.Equal(t, map[string]string{
		"collection_name": "sample",
		"template_ids":    "T1,T2",
	}, exp.assetParams[0])
}

func TestFetchByDiscoveredFields_NoTemplatesIsEmpty(t *testing.T) {
	exp := sampleExplorer()
	s := newTestService(exp)

	assets, err := s.FetchByDiscoveredFields(context.Background(), "sample", []string{"rarity"})
	require.NoError(t, err)
	assert.NotNil(t, assets)
	assert.Empty(t, assets)
	assert.Empty(t, exp.assetParams)
}

func TestFetchByDiscoveredFields_SharedTemplateIDKeptOnce(t *testing.T) {
	exp := &fakeExplorer{
		schemas: []types.Schema{{SchemaName: "zeta"}, {SchemaName: "alpha"}},
		templates: map[string][]types.Template{
			"zeta":  {template("7", map[string]any{"city": "x"}), template("12", map[string]any{"year": 1})},
			"alpha": {template("7", map[string]any{"nation": "y"}), template("3", map[string]any{"day": 2})},
		},
		assets: []types.Asset{},
	}
	s := newTestService(exp)

	_, err := s.FetchByDiscoveredFields(context.Background(), "sample", nil)
	require.NoError(t, err)

	require.Len(t, exp.assetParams, 1)
	assert.Equal(t, "3,7,12", exp.assetParams[0]["template_ids"])
}

func TestFetchByDiscoveredFields_Errors(t *testing.T) {
	t.Run("scan failure", func(t *testing.T) {
		s := newTestService(&fakeExplorer{schemaErr: errUnreachable})
		assets, err := s.FetchByDiscoveredFields(context.Background(), "sample", nil)
		require.Error(t, err)
		assert.Nil(t, assets)
		assert.True(t, types.IsErrorType(err, types.ErrTypeLookupFailure))
	})

	t.Run("asset failure", func(t *testing.T) {
		exp := sampleExplorer()
		exp.assetErr = errUnreachable
		s := newTestService(exp)
		_, err := s.FetchByDiscoveredFields(context.Background(), "sample", nil)
		require.Error(t, err)
		assert.True(t, types.IsErrorType(err, types.ErrTypeLookupFailure))
	})

	t.Run("missing asset list", func(t *testing.T) {
		exp := sampleExplorer()
		exp.assets = nil
		s := newTestService(exp)
		_, err := s.FetchByDiscoveredFields(context.Background(), "sample", nil)
		require.Error(t, err)
		assert.True(t, types.IsErrorType(err, types.ErrTypeMalformedResult))
	})
}

func TestFetchByFieldFilters(t *testing.T) {
	exp := sampleExplorer()
	s := newTestService(exp)

	assets, err := s.FetchByFieldFilters(context.Background(), "sample", FieldFilters{"a": true, "b": 5, "c": "x"})
	require.NoError(t, err)
	assert.Equal(t, exp.assets, assets)

	require.Len(t, exp.assetParams, 1)
	assert.Equal(t, map[string]string{
		"collection_name": "sample",
		"data:bool.a":     "true",
		"data:number.b":   "5",
		"data:text.c":     "x",
	}, exp.assetParams[0])
}

func TestFetchByFieldFilters_Errors(t *testing.T) {
	t.Run("missing asset list", func(t *testing.T) {
		exp := sampleExplorer()
		exp.assets = nil
		s := newTestService(exp)

		assets, err := s.FetchByFieldFilters(context.Background(), "sample", nil)
		require.Error(t, err)
		assert.Nil(t, assets)
		assert.True(t, types.IsErrorType(err, types.ErrTypeMalformedResult))
		assert.Contains(t, err.Error(), "NFT data could not be parsed")
	})

	t.Run("lookup failure", func(t *testing.T) {
		exp := sampleExplorer()
		exp.assetErr = errUnreachable
		s := newTestService(exp)

		_, err := s.FetchByFieldFilters(context.Background(), "sample", FieldFilters{"city": "x"})
		require.Error(t, err)
		assert.True(t, types.IsErrorType(err, types.ErrTypeLookupFailure))
	})

	t.Run("empty field name", func(t *testing.T) {
		exp := sampleExplorer()
		s := newTestService(exp)

		_, err := s.FetchByFieldFilters(context.Background(), "sample", FieldFilters{" ": "x"})
		require.Error(t, err)
		assert.True(t, types.IsErrorType(err, types.ErrTypeBadRequest))
		assert.Empty(t, exp.assetParams)
	})

	t.Run("empty collection", func(t *testing.T) {
		exp := sampleExplorer()
		s := newTestService(exp)

		_, err := s.FetchByFieldFilters(context.Background(), "", nil)
		require.Error(t, err)
		assert.True(t, types.IsErrorType(err, types.ErrTypeBadRequest))
	})
}

func TestFetchByNation(t *testing.T) {
	t.Run("upper-cases nation", func(t *testing.T) {
		exp := sampleExplorer()
		s := newTestService(exp)

		_, err := s.FetchByNation(context.Background(), "sample", "us", nil)
		require.NoError(t, err)
		require.Len(t, exp.assetParams, 1)
		assert.Equal(t, map[string]string{
			"collection_name":  "sample",
			"data:text.nation": "US",
		}, exp.assetParams[0])
	})

	t.Run("empty nation only applies filters", func(t *testing.T) {
		exp := sampleExplorer()
		s := newTestService(exp)

		_, err := s.FetchByNation(context.Background(), "sample", "", FieldFilters{"region": "EU"})
		require.NoError(t, err)
		require.Len(t, exp.assetParams, 1)
		assert.Equal(t, map[string]string{
			"collection_name":  "sample",
			"data:text.region": "EU",
		}, exp.assetParams[0])
	})

	t.Run("missing asset list", func(t *testing.T) {
		exp := sampleExplorer()
		exp.assets = nil
		s := newTestService(exp)

		_, err := s.FetchByNation(context.Background(), "sample", "us", nil)
		require.Error(t, err)
		assert.True(t, types.IsErrorType(err, types.ErrTypeMalformedResult))
	})
}
