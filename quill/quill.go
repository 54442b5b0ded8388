// Package quill loads template-package descriptors ("Quill.toml") and turns
// their field declarations into compiled schemas.
//
// A descriptor looks like:
//
//	[Quill]
//	name = "letter"
//	backend = "typst"
//	glue = "glue.typ"
//
//	[fields]
//	title = { type = "string", description = "Document title" }
//	status = { type = "string", default = "draft" }
//
//	[cards.recipient]
//	title = "Recipient"
//	[cards.recipient.fields]
//	name = { type = "string" }
package quill

import (
	"regexp"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	quillmark "github.com/quillmark/quillmark-go"
)

// Quill is a parsed descriptor: package metadata plus the declared field
// and card schemas.
type Quill struct {
	Name        string `toml:"name"`
	Backend     string `toml:"backend"`
	Glue        string `toml:"glue"`
	Description string `toml:"description"`
	Example     string `toml:"example"`

	Fields map[string]Field
	Cards  map[string]Card
}

// Field is one field declaration as written in the descriptor. Type is
// optional and defaults to "string".
type Field struct {
	Type        string         `toml:"type"`
	Description string         `toml:"description"`
	Default     any            `toml:"default"`
	Required    *bool          `toml:"required"`
	Examples    []any          `toml:"examples"`
	UI          map[string]any `toml:"ui"`
}

// Card is one card variant declaration.
type Card struct {
	Title       string           `toml:"title"`
	Description string           `toml:"description"`
	Fields      map[string]Field `toml:"fields"`
}

type file struct {
	Quill  Quill            `toml:"Quill"`
	Fields map[string]Field `toml:"fields"`
	Cards  map[string]Card  `toml:"cards"`
}

var nameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Parse decodes a Quill.toml document and validates its metadata.
func Parse(data []byte) (*Quill, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	q := f.Quill
	q.Fields = f.Fields
	q.Cards = f.Cards
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// Validate checks the descriptor metadata. Field and card declarations are
// checked separately, by Compile.
func (q *Quill) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Name, validation.Required, validation.Match(nameRe)),
		validation.Field(&q.Backend, validation.Required),
	)
}

// Compile converts the descriptor's declarations into a compiled schema.
// Declaration problems (unknown types, reserved names, non-conforming
// defaults) surface here, from the schema compiler.
func (q *Quill) Compile() (*quillmark.Schema, error) {
	cards := make(map[string]quillmark.CardSchema, len(q.Cards))
	for name, c := range q.Cards {
		cards[name] = quillmark.CardSchema{
			Title:       c.Title,
			Description: c.Description,
			Fields:      convertFields(c.Fields),
		}
	}
	return quillmark.Compile(convertFields(q.Fields), cards)
}

func convertFields(in map[string]Field) map[string]quillmark.FieldSchema {
	out := make(map[string]quillmark.FieldSchema, len(in))
	for name, f := range in {
		t := quillmark.FieldType(f.Type)
		if f.Type == "" {
			t = quillmark.TypeString
		}
		decl := quillmark.FieldSchema{
			Type:        t,
			Description: f.Description,
			Required:    f.Required,
			UI:          f.UI,
		}
		if f.Default != nil {
			d := quillmark.ValueOf(f.Default)
			decl.Default = &d
		}
		for _, ex := range f.Examples {
			decl.Examples = append(decl.Examples, quillmark.ValueOf(ex))
		}
		out[name] = decl
	}
	return out
}
