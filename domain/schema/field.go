package schema

// FieldKind tags the semantic type of a declared field. Validation and
// serialization switch on the tag; no reflection is involved.
type FieldKind string

const (
	FieldText    FieldKind = "Text"
	FieldNumber  FieldKind = "Number"
	FieldBoolean FieldKind = "Boolean"
	FieldDate    FieldKind = "Date"
)

// Field describes one declared field of a model: its kind plus the constraint
// set that applies to that kind. Constraints for other kinds are ignored.
type Field struct {
	Kind     FieldKind `json:"type"`
	Label    string    `json:"label,omitempty"`
	Required bool      `json:"required,omitempty"`
	Default  any       `json:"default,omitempty"`

	// Text constraints
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Options   []string `json:"options,omitempty"`

	// Number constraints
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Fields maps field name to its definition.
type Fields map[string]Field
