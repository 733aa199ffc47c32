package fields

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// FieldFilters maps a field name to the value assets must carry for it.
// Values are bools, numbers or text; anything else is sent as text.
type FieldFilters map[string]any

const (
	paramCollectionName = "collection_name"
	paramTemplateIDs    = "template_ids"
	nationField         = "nation"
)

// Value types of the data:<type>.<field> query encoding
const (
	TypeBool   = "bool"
	TypeNumber = "number"
	TypeText   = "text"
)

var (
	filterTypes   = []string{TypeBool, TypeNumber, TypeText}
	numberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
)

// FilterKey returns the query parameter key for field under valueType.
func FilterKey(valueType, field string) string {
	return "data:" + valueType + "." + field
}

// EncodeFilterValue returns the encoding type of value and its query text.
// The kind of value decides the type, so named bool and numeric types encode
// like their underlying type.
func EncodeFilterValue(value any) (string, string) {
	switch v := value.(type) {
	case nil:
		return TypeText, ""
	case json.Number:
		return TypeNumber, v.String()
	case string:
		return TypeText, v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return TypeBool, strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return TypeNumber, strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return TypeNumber, strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return TypeNumber, strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return TypeNumber, strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.String:
		return TypeText, rv.String()
	default:
		return TypeText, fmt.Sprint(value)
	}
}

// setFilter writes one filter parameter, dropping any earlier parameter for
// the same field so a field is never encoded under two types.
func setFilter(params map[string]string, field string, value any) {
	valueType, text := EncodeFilterValue(value)
	for _, t := range filterTypes {
		delete(params, FilterKey(t, field))
	}
	params[FilterKey(valueType, field)] = text
}

// BuildFilterParams translates filters into data:<type>.<field> parameters.
func BuildFilterParams(filters FieldFilters) map[string]string {
	params := make(map[string]string, len(filters))
	for field, value := range filters {
		setFilter(params, field, value)
	}
	return params
}

// BuildNationFilterParams is BuildFilterParams preceded by an upper-cased
// nation filter. A nation entry in filters replaces it.
func BuildNationFilterParams(nation string, filters FieldFilters) map[string]string {
	params := make(map[string]string, len(filters)+1)
	if nation != "" {
		setFilter(params, nationField, strings.ToUpper(nation))
	}
	for field, value := range filters {
		setFilter(params, field, value)
	}
	return params
}

// ParseFilterValue types a raw text value: true/false become bools, numbers
// become json.Number and anything else stays text. Double quotes force text.
func ParseFilterValue(raw string) any {
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return raw[1 : len(raw)-1]
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if numberPattern.MatchString(raw) {
		return json.Number(raw)
	}
	return raw
}

func validateFilters(filters FieldFilters) error {
	for field := range filters {
		if strings.TrimSpace(field) == "" {
			return errEmptyFilterField
		}
	}
	return nil
}
