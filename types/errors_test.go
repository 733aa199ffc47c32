package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeOf(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("scan templates: %w", NewLookupFailureError("list schemas", cause))

	assert.Equal(t, ErrTypeLookupFailure, ErrorTypeOf(err))
	assert.True(t, IsErrorType(err, ErrTypeLookupFailure))
	assert.False(t, IsErrorType(err, ErrTypeEmptyResult))
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, ErrTypeInternal, ErrorTypeOf(errors.New("plain")))
}

func TestEmptyResultMessage(t *testing.T) {
	err := NewEmptyResultError("schemas", "sample")
	assert.Contains(t, err.Error(), "sample")
	assert.True(t, IsErrorType(err, ErrTypeEmptyResult))
}
