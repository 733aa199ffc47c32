package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHandlerPattern(t *testing.T) {
	tests := map[string]string{
		"/health":    "health",
		"/swagger/*": "swagger",

		"/fields/v1/collections/:collection/templates":                "templates",
		"/fields/v1/collections/:collection/schemas":                  "schemas",
		"/fields/v1/collections/:collection/assets/by_fields":         "assets_by_fields",
		"/fields/v1/collections/:collection/assets/by_filter":         "assets_by_filter",
		"/fields/v1/collections/:collection/assets/by_nation/:nation": "assets_by_nation",

		// concrete paths and unknown routes never become labels
		"":                                        "other",
		"/":                                       "other",
		"/fields/v1/collections/sample/templates": "other",
		"/fields/v1/collections/sample/junk":      "other",
	}

	for route, want := range tests {
		assert.Equal(t, want, GetHandlerPattern(route), route)
	}
}

func TestGetStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", GetStatusClass(200))
	assert.Equal(t, "4xx", GetStatusClass(404))
	assert.Equal(t, "5xx", GetStatusClass(502))
	assert.Equal(t, "other", GetStatusClass(0))
}

func TestGetDurationBucket(t *testing.T) {
	assert.Empty(t, GetDurationBucket(0.5))
	assert.Equal(t, "1-2s", GetDurationBucket(1.5))
	assert.Equal(t, "2-5s", GetDurationBucket(3))
	assert.Equal(t, "5s+", GetDurationBucket(12))
}
