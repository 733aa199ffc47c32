package common

import (
	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/assetfields/types"
)

const (
	ErrInvalidParams = "invalid parameters"
)

// ErrorStatus maps a service error to the HTTP status reported for it.
func ErrorStatus(err error) int {
	switch types.ErrorTypeOf(err) {
	case types.ErrTypeBadRequest, types.ErrTypeValidation, types.ErrTypeInvalidValue:
		return fiber.StatusBadRequest
	case types.ErrTypeEmptyResult:
		return fiber.StatusNotFound
	case types.ErrTypeLookupFailure, types.ErrTypeMalformedResult:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ServiceError converts a service error into a fiber error and counts it.
func (h *BaseHandler) ServiceError(err error) error {
	h.TrackError(string(types.ErrorTypeOf(err)))
	return fiber.NewError(ErrorStatus(err), err.Error())
}
