package types

import "encoding/json"

// Schema is a named grouping of templates inside a collection.
type Schema struct {
	SchemaName     string `json:"schema_name"`
	CollectionName string `json:"collection_name,omitempty"`
	CreatedAtTime  string `json:"created_at_time,omitempty"`
}

// Template carries the immutable metadata every asset minted from it shares.
type Template struct {
	TemplateID    string         `json:"template_id"`
	SchemaName    string         `json:"-"`
	ImmutableData map[string]any `json:"immutable_data"`
	IssuedSupply  string         `json:"issued_supply,omitempty"`
	MaxSupply     string         `json:"max_supply,omitempty"`
}

// UnmarshalJSON accepts the nested schema object the explorer returns for
// templates and keeps only its name.
func (t *Template) UnmarshalJSON(data []byte) error {
	type alias Template
	var raw struct {
		alias
		Schema struct {
			SchemaName string `json:"schema_name"`
		} `json:"schema"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Template(raw.alias)
	t.SchemaName = raw.Schema.SchemaName
	return nil
}

// Asset is an explorer asset record. It is propagated as-is.
type Asset = json.RawMessage

// ExplorerResponse is the envelope every explorer listing endpoint returns.
// Data stays nil when the field is missing or null.
type ExplorerResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      []T    `json:"data"`
	Message   string `json:"message,omitempty"`
	QueryTime int64  `json:"query_time,omitempty"`
}
