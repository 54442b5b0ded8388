package quillmark

import (
	"github.com/quillmark/quillmark-go/jsonschema"
)

// JSONSchema exports the compiled schema as a JSON Schema document
// describing the fully assembled record: the global fields plus the
// synthesized BODY and CARDS keys, with card variants as a oneOf union
// discriminated by the CARD constant.
func (s *Schema) JSONSchema() (*jsonschema.Schema, error) {
	root := &jsonschema.Schema{
		Type:                 "object",
		Properties:           map[string]*jsonschema.Schema{},
		AdditionalProperties: true,
	}
	exportFields(root, s.fieldDecls)

	root.Properties[FieldBody] = &jsonschema.Schema{
		Type:        "string",
		Description: "Free text of the global block.",
	}

	variants := make([]*jsonschema.Schema, 0, len(s.cardDecls))
	for _, name := range sortedKeys(s.cardDecls) {
		decl := s.cardDecls[name]
		v := &jsonschema.Schema{
			Type:        "object",
			Title:       decl.Title,
			Description: decl.Description,
			Properties: map[string]*jsonschema.Schema{
				DirectiveCard: {Type: "string", Const: name},
				FieldBody:     {Type: "string"},
			},
			Required:             []string{DirectiveCard},
			AdditionalProperties: true,
		}
		exportFields(v, decl.Fields)
		variants = append(variants, v)
	}
	root.Properties[FieldCards] = &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{OneOf: variants},
	}
	return root, nil
}

func exportFields(dst *jsonschema.Schema, fields map[string]FieldSchema) {
	for _, name := range sortedKeys(fields) {
		decl := fields[name]
		dst.Properties[name] = exportField(decl)
		if decl.effectiveRequired() {
			dst.Required = append(dst.Required, name)
		}
	}
}

func exportField(decl FieldSchema) *jsonschema.Schema {
	out := &jsonschema.Schema{Description: decl.Description}
	switch decl.Type {
	case TypeDate:
		out.Type, out.Format = "string", "date"
	case TypeDateTime:
		out.Type, out.Format = "string", "date-time"
	default:
		out.Type = string(decl.Type)
	}
	if decl.Default != nil {
		out.Default = decl.Default.Interface()
	}
	for _, ex := range decl.Examples {
		out.Examples = append(out.Examples, ex.Interface())
	}
	if len(decl.UI) > 0 {
		out.Extensions = map[string]any{"x-ui": decl.UI}
	}
	return out
}
