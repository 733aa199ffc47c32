// Package fields discovers which metadata fields a collection's templates
// carry and fetches assets filtered by field values.
package fields

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/initia-labs/assetfields/explorer"
	"github.com/initia-labs/assetfields/metrics"
	"github.com/initia-labs/assetfields/types"
)

// TemplateFieldMap maps schema name to template id to the requested fields
// found on that template, in request order.
type TemplateFieldMap map[string]map[string][]string

// SchemaFieldMap maps schema name to the distinct fields seen on any of its
// templates.
type SchemaFieldMap map[string][]string

// Service holds no per-call state; one instance can serve concurrent callers.
type Service struct {
	explorer      explorer.Explorer
	defaultFields []string
	logger        *slog.Logger
}

func NewService(exp explorer.Explorer, defaultFields []string, logger *slog.Logger) *Service {
	return &Service{
		explorer:      exp,
		defaultFields: append([]string(nil), defaultFields...),
		logger:        logger.With("component", "fields"),
	}
}

// DefaultFields returns the field list used when a caller passes none.
func (s *Service) DefaultFields() []string {
	return append([]string(nil), s.defaultFields...)
}

func (s *Service) fieldsOrDefault(fields []string) []string {
	if len(fields) == 0 {
		return s.defaultFields
	}
	return fields
}

func validateCollection(collection string) error {
	if strings.TrimSpace(collection) == "" {
		return types.NewBadRequestError("collection name is required")
	}
	return nil
}

// fail logs a failed operation once and wraps the error with its context.
// Caller-side outcomes log at warn, upstream and internal faults at error.
func (s *Service) fail(operation, collection string, err error) error {
	errType := types.ErrorTypeOf(err)
	metrics.TrackError("fields", string(errType))
	s.logger.Log(context.Background(), failureLevel(errType), "operation failed",
		slog.String("operation", operation),
		slog.String("collection", collection),
		slog.String("error_type", string(errType)),
		slog.String("error", err.Error()))
	return fmt.Errorf("%s %q: %w", operation, collection, err)
}

func failureLevel(errType types.ErrorType) slog.Level {
	switch errType {
	case types.ErrTypeBadRequest, types.ErrTypeEmptyResult:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
