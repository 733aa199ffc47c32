package fields

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilterParams(t *testing.T) {
	tests := []struct {
		name     string
		filters  FieldFilters
		expected map[string]string
	}{
		{"bool true", FieldFilters{"rare": true}, map[string]string{"data:bool.rare": "true"}},
		{"bool false", FieldFilters{"rare": false}, map[string]string{"data:bool.rare": "false"}},
		{"int", FieldFilters{"year": 2020}, map[string]string{"data:number.year": "2020"}},
		{"negative int64", FieldFilters{"depth": int64(-12)}, map[string]string{"data:number.depth": "-12"}},
		{"uint8", FieldFilters{"day": uint8(7)}, map[string]string{"data:number.day": "7"}},
		{"float", FieldFilters{"lat": 51.5}, map[string]string{"data:number.lat": "51.5"}},
		{"float32", FieldFilters{"lon": float32(0.25)}, map[string]string{"data:number.lon": "0.25"}},
		{"json number", FieldFilters{"month": json.Number("12")}, map[string]string{"data:number.month": "12"}},
		{"text", FieldFilters{"city": "Oslo"}, map[string]string{"data:text.city": "Oslo"}},
		{"numeric text stays text", FieldFilters{"year": "2020"}, map[string]string{"data:text.year": "2020"}},
		{"nil is empty text", FieldFilters{"state": nil}, map[string]string{"data:text.state": ""}},
		{"other values as text", FieldFilters{"tags": []string{"a", "b"}}, map[string]string{"data:text.tags": "[a b]"}},
		{"empty", FieldFilters{}, map[string]string{}},
		{"nil filters", nil, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildFilterParams(tt.filters))
		})
	}
}

type (
	mintYear  int
	burnable  bool
	rarity    string
	weightKgs float32
)

func TestBuildFilterParams_NamedKinds(t *testing.T) {
	params := BuildFilterParams(FieldFilters{
		"year":     mintYear(2020),
		"burnable": burnable(true),
		"rarity":   rarity("epic"),
		"weight":   weightKgs(1.5),
		"ttl":      time.Duration(5),
	})

	assert.Equal(t, map[string]string{
		"data:number.year":   "2020",
		"data:bool.burnable": "true",
		"data:text.rarity":   "epic",
		"data:number.weight": "1.5",
		"data:number.ttl":    "5",
	}, params)
}

func TestBuildFilterParams_OneParamPerFilter(t *testing.T) {
	params := BuildFilterParams(FieldFilters{"a": true, "b": 5, "c": "x"})

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"data:bool.a", "data:number.b", "data:text.c"}, keys)
	assert.Equal(t, "true", params["data:bool.a"])
	assert.Equal(t, "5", params["data:number.b"])
	assert.Equal(t, "x", params["data:text.c"])
}

func TestBuildNationFilterParams(t *testing.T) {
	t.Run("nation is upper-cased", func(t *testing.T) {
		assert.Equal(t, map[string]string{"data:text.nation": "US"}, BuildNationFilterParams("us", nil))
	})

	t.Run("empty nation adds nothing", func(t *testing.T) {
		assert.Equal(t,
			map[string]string{"data:text.region": "EU"},
			BuildNationFilterParams("", FieldFilters{"region": "EU"}))
	})

	t.Run("generic nation filter wins", func(t *testing.T) {
		assert.Equal(t,
			map[string]string{"data:text.nation": "can"},
			BuildNationFilterParams("us", FieldFilters{"nation": "can"}))
	})

	t.Run("override under another type leaves one key", func(t *testing.T) {
		assert.Equal(t,
			map[string]string{"data:bool.nation": "true", "data:number.year": "1999"},
			BuildNationFilterParams("us", FieldFilters{"nation": true, "year": 1999}))
	})
}

func TestParseFilterValue(t *testing.T) {
	assert.Equal(t, true, ParseFilterValue("true"))
	assert.Equal(t, false, ParseFilterValue("false"))
	assert.Equal(t, json.Number("2020"), ParseFilterValue("2020"))
	assert.Equal(t, json.Number("-1.5e3"), ParseFilterValue("-1.5e3"))
	assert.Equal(t, "2020", ParseFilterValue(`"2020"`))
	assert.Equal(t, "true", ParseFilterValue(`"true"`))
	assert.Equal(t, "007", ParseFilterValue("007"))
	assert.Equal(t, "Inf", ParseFilterValue("Inf"))
	assert.Equal(t, "0x10", ParseFilterValue("0x10"))
	assert.Equal(t, "Oslo", ParseFilterValue("Oslo"))
	assert.Equal(t, "", ParseFilterValue(""))
	assert.Equal(t, `"`, ParseFilterValue(`"`))
}

func TestEncodeFilterValue_RoundTripsParsedValues(t *testing.T) {
	for raw, expectedType := range map[string]string{
		"true": TypeBool,
		"12":   TypeNumber,
		"1.25": TypeNumber,
		"USA":  TypeText,
	} {
		valueType, text := EncodeFilterValue(ParseFilterValue(raw))
		assert.Equal(t, expectedType, valueType, raw)
		assert.Equal(t, raw, text)
	}
}
