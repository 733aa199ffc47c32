package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/initia-labs/assetfields/types"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad request", types.NewBadRequestError("collection name is required"), fiber.StatusBadRequest},
		{"empty result", types.NewEmptyResultError("schemas", "sample"), fiber.StatusNotFound},
		{"lookup failure", types.NewLookupFailureError("list schemas", errors.New("timeout")), fiber.StatusBadGateway},
		{"malformed result", types.NewMalformedResultError("NFT data could not be parsed"), fiber.StatusBadGateway},
		{"wrapped", fmt.Errorf("scan templates %q: %w", "sample", types.NewEmptyResultError("schemas", "sample")), fiber.StatusNotFound},
		{"untyped", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, ErrorStatus(tt.err))
		})
	}
}
