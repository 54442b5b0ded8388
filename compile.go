package quillmark

import (
	"sort"

	"github.com/quillmark/quillmark-go/internal/ir"
)

// Schema is a compiled document declaration: the global field set plus the
// card union. Compiled schemas are immutable and safe for concurrent use.
type Schema struct {
	global *ir.Object
	cards  *ir.OneOf

	fieldDecls map[string]FieldSchema
	cardDecls  map[string]CardSchema
}

// Compile builds a Schema from the global field declarations and the card
// variant declarations. It rejects unknown field types, reserved or empty
// names, defaults and examples that don't conform to their own declared
// type, and card names that collide with global fields. All failures carry
// CodeInvalidSchemaDefinition.
func Compile(fields map[string]FieldSchema, cards map[string]CardSchema) (*Schema, error) {
	global, perr := compileObject(fields, "", "", "fields")
	if perr != nil {
		return nil, perr
	}

	union := &ir.OneOf{
		Discriminator: DirectiveCard,
		Mapping:       make(map[string]*ir.Object, len(cards)),
	}
	for _, name := range sortedKeys(cards) {
		if !validCardName(name) {
			return nil, schemaErrf("invalid card name %q: must match [a-z_][a-z0-9_]*", name)
		}
		if _, clash := fields[name]; clash {
			return nil, schemaErrf("card %q collides with a global field of the same name", name)
		}
		decl := cards[name]
		obj, perr := compileObject(decl.Fields, decl.Title, decl.Description, "cards."+name+".fields")
		if perr != nil {
			return nil, perr
		}
		union.Mapping[name] = obj
	}

	return &Schema{
		global:     global,
		cards:      union,
		fieldDecls: copyFieldDecls(fields),
		cardDecls:  copyCardDecls(cards),
	}, nil
}

// MustCompile is like Compile but panics on error. Intended for
// package-level schema declarations.
func MustCompile(fields map[string]FieldSchema, cards map[string]CardSchema) *Schema {
	s, err := Compile(fields, cards)
	if err != nil {
		panic(err)
	}
	return s
}

// CardNames returns the declared card variant names in sorted order.
func (s *Schema) CardNames() []string {
	return sortedKeys(s.cardDecls)
}

func compileObject(fields map[string]FieldSchema, title, description, path string) (*ir.Object, *ParseError) {
	obj := &ir.Object{Title: title, Description: description}
	for _, name := range sortedKeys(fields) {
		decl := fields[name]
		fieldPath := path + "." + name
		if name == "" {
			return nil, schemaErrf("%s: field name must not be empty", path)
		}
		if reservedKey(name) {
			return nil, schemaErrf("%s: %q is reserved and cannot be declared", path, name)
		}
		if !validFieldType(decl.Type) {
			return nil, schemaErrf("%s: unknown field type %q", fieldPath, decl.Type)
		}

		f := ir.Field{
			Name:        name,
			Node:        fieldNode(decl.Type),
			Required:    decl.effectiveRequired(),
			Description: decl.Description,
			UI:          decl.UI,
		}
		if decl.Default != nil {
			d, ok := coerceValue(*decl.Default, decl.Type)
			if !ok {
				return nil, schemaErrf("%s: default does not conform to type %q", fieldPath, decl.Type)
			}
			f.Default = d
			f.HasDefault = true
		}
		for i, ex := range decl.Examples {
			e, ok := coerceValue(ex, decl.Type)
			if !ok {
				return nil, schemaErrf("%s: example %d does not conform to type %q", fieldPath, i, decl.Type)
			}
			f.Examples = append(f.Examples, e)
		}
		obj.Fields = append(obj.Fields, f)
	}
	return obj, nil
}

func fieldNode(t FieldType) ir.Node {
	switch t {
	case TypeArray:
		// Untyped items: any sequence conforms.
		return &ir.Array{}
	case TypeObject:
		// Open mapping: any object conforms.
		return &ir.Object{}
	default:
		return &ir.Primitive{Name: string(t)}
	}
}

func reservedKey(name string) bool {
	switch name {
	case FieldBody, FieldCards, DirectiveCard, DirectiveQuill:
		return true
	}
	return false
}

func schemaErrf(format string, args ...any) *ParseError {
	return parseErrf(CodeInvalidSchemaDefinition, nil, format, args...)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyFieldDecls(in map[string]FieldSchema) map[string]FieldSchema {
	out := make(map[string]FieldSchema, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyCardDecls(in map[string]CardSchema) map[string]CardSchema {
	out := make(map[string]CardSchema, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
