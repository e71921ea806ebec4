// Package jsonschema holds the JSON Schema shapes produced by record
// descriptors when exporting the typed Sonarr and Radarr models.
package jsonschema

// Draft is the dialect stamped on exported root documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema covers the subset of JSON Schema a record descriptor can produce.
type Schema struct {
	Dialect     string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	Items *Schema `json:"items,omitempty"`

	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Nullable wraps s so that JSON null is also accepted.
func Nullable(s *Schema) *Schema {
	return &Schema{OneOf: []*Schema{s, {Type: "null"}}}
}

// Document returns a copy of s marked as a standalone root document.
func Document(s *Schema) *Schema {
	out := *s
	out.Dialect = Draft
	return &out
}
