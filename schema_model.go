package quillmark

// FieldType names the scalar or container type a declared field accepts.
type FieldType string

const (
	TypeString   FieldType = "string"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeArray    FieldType = "array"
	TypeObject   FieldType = "object"
	TypeDate     FieldType = "date"     // ISO 8601 calendar date, 2006-01-02
	TypeDateTime FieldType = "datetime" // RFC 3339 timestamp
)

func validFieldType(t FieldType) bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeArray, TypeObject, TypeDate, TypeDateTime:
		return true
	}
	return false
}

// FieldSchema declares one field: its type plus defaulting and requiredness
// policy. A field with a default is never required, regardless of Required;
// a field with neither default nor an explicit Required=false is required.
type FieldSchema struct {
	Type        FieldType
	Description string
	// Default, when non-nil, is applied to absent fields and suppresses
	// requiredness. It must itself conform to Type.
	Default  *Value
	Required *bool
	Examples []Value
	// UI carries opaque presentation hints; they are preserved through
	// compilation and surfaced in the JSON Schema export untouched.
	UI map[string]any
}

// effectiveRequired resolves the requiredness policy: a default wins, then
// the explicit flag, then the required-by-default rule.
func (f FieldSchema) effectiveRequired() bool {
	if f.Default != nil {
		return false
	}
	if f.Required != nil {
		return *f.Required
	}
	return true
}

// CardSchema declares one card variant: the name blocks select with the
// CARD directive, plus the variant's own field declarations.
type CardSchema struct {
	Title       string
	Description string
	Fields      map[string]FieldSchema
}
