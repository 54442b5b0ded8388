package quillmark

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillmark/quillmark-go/i18n"
	"github.com/quillmark/quillmark-go/internal/ir"
)

// Validate checks doc against the schema and applies defaults, returning a
// new document plus every finding. It never stops at the first problem:
// diagnostics accumulate across all global fields and all cards, and the
// returned document is always usable (fields that failed validation keep
// their original values). Validating the returned document again yields no
// new diagnostics.
//
// Fields the schema does not declare pass through untouched. Messages go
// through the i18n translator; the raw metadata (field, card, expected,
// actual) is what custom translators receive.
func (s *Schema) Validate(ctx context.Context, doc *Document) (*Document, Diagnostics) {
	var diags Diagnostics

	out := &Document{
		body:     doc.body,
		quillTag: doc.quillTag,
		loc:      doc.loc,
	}
	out.fields = validateFields(s.global, doc.fields, "", "", nil, &diags)

	out.cards = make([]Card, len(doc.cards))
	for i, c := range doc.cards {
		out.cards[i] = c
		variant, known := s.cards.Mapping[c.name]
		if !known {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeUnknownCardVariant,
				Message: i18n.T(CodeUnknownCardVariant, map[string]string{
					"card":  c.name,
					"known": strings.Join(s.CardNames(), ", "),
				}),
				Path: fmt.Sprintf("cards[%d]", i),
				Loc:  locPtr(c.loc),
			})
			continue
		}
		prefix := fmt.Sprintf("cards[%d].", i)
		out.cards[i].fields = validateFields(variant, c.fields, prefix, c.name, locPtr(c.loc), &diags)
	}
	return out, diags
}

// validateFields walks one object declaration over one field mapping,
// appending findings to diags and returning the defaulted mapping. card is
// the discriminator when the mapping belongs to a card entry, empty for the
// global block. Declared fields are visited in the compiler's sorted order
// so diagnostic order is stable.
func validateFields(obj *ir.Object, in Fields, pathPrefix, card string, loc *Location, diags *Diagnostics) Fields {
	out := cloneFields(in)
	for _, f := range obj.Fields {
		path := pathPrefix + f.Name
		got, present := out.Get(f.Name)
		if !present {
			if f.HasDefault {
				out.Set(f.Name, f.Default.(Value))
			} else if f.Required {
				*diags = append(*diags, Diagnostic{
					Severity: SeverityError,
					Code:     CodeMissingRequiredField,
					Message:  i18n.T(CodeMissingRequiredField, diagData(f.Name, card, nil)),
					Path:     path,
					Loc:      loc,
				})
			}
			continue
		}
		coerced, ok := coerceValue(got, fieldType(f.Node))
		if !ok {
			*diags = append(*diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeTypeMismatch,
				Message: i18n.T(CodeTypeMismatch, diagData(f.Name, card, map[string]string{
					"expected": string(fieldType(f.Node)),
					"actual":   got.Kind().String(),
				})),
				Path: path,
				Loc:  loc,
			})
			continue
		}
		out.Set(f.Name, coerced)
	}
	return out
}

// diagData assembles translator metadata. The "scope" entry carries the
// rendered card suffix so the built-in dictionary can name the
// discriminator; custom translators also get the bare "card" value.
func diagData(field, card string, extra map[string]string) map[string]string {
	data := map[string]string{"field": field, "scope": ""}
	if card != "" {
		data["card"] = card
		data["scope"] = fmt.Sprintf(" from card %q", card)
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// fieldType recovers the declared FieldType from a compiled node.
func fieldType(n ir.Node) FieldType {
	switch t := n.(type) {
	case *ir.Primitive:
		return FieldType(t.Name)
	case *ir.Array:
		return TypeArray
	case *ir.Object:
		return TypeObject
	}
	return ""
}

func locPtr(l Location) *Location {
	c := l
	return &c
}
