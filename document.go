package quillmark

// Reserved key surface. BODY and CARDS are synthesized into the template
// context and must not appear as author-supplied header keys. CARD and QUILL
// are header directives, extracted before the field mapping is built.
const (
	FieldBody      = "BODY"
	FieldCards     = "CARDS"
	DirectiveCard  = "CARD"
	DirectiveQuill = "QUILL"
)

// Document is the finished record of a decomposed markdown document: one
// global field set, the global body, and an ordered card collection.
// Documents are immutable once built.
type Document struct {
	fields   Fields
	body     string
	cards    []Card
	quillTag string
	loc      Location
}

// Fields returns the global field mapping. It never contains the reserved
// BODY/CARDS keys. Callers must not mutate it.
func (d *Document) Fields() Fields { return d.fields }

// Field returns a single global field by name.
func (d *Document) Field(name string) (Value, bool) { return d.fields.Get(name) }

// Body returns the global body text.
func (d *Document) Body() string { return d.body }

// Cards returns the card collection in document order, interleaved across
// discriminators exactly as authored.
func (d *Document) Cards() []Card { return d.cards }

// QuillTag returns the quill directive value and whether one was present.
func (d *Document) QuillTag() (string, bool) {
	return d.quillTag, d.quillTag != ""
}

// TemplateContext materializes the downstream hand-off: the global fields
// with BODY and CARDS merged in as an opaque key→value context. Each card
// appears as a mapping of its own fields plus its discriminator under CARD
// and its body under BODY; both spellings are reserved, so author fields can
// never be shadowed.
func (d *Document) TemplateContext() map[string]Value {
	ctx := make(map[string]Value, d.fields.Len()+2)
	for p := d.fields.Oldest(); p != nil; p = p.Next() {
		ctx[p.Key] = p.Value
	}
	ctx[FieldBody] = StringValue(d.body)
	items := make([]Value, len(d.cards))
	for i, c := range d.cards {
		items[i] = c.value()
	}
	ctx[FieldCards] = SequenceValue(items...)
	return ctx
}

// Card is one tagged entry of the discriminated-union collection.
type Card struct {
	name   string
	fields Fields
	body   string
	loc    Location
}

// Name returns the discriminator that selects the governing card schema.
func (c Card) Name() string { return c.name }

// Fields returns the card's own field mapping. Callers must not mutate it.
func (c Card) Fields() Fields { return c.fields }

// Body returns the text following the card's header, never re-parsed.
func (c Card) Body() string { return c.body }

// Location returns the position of the card's header in the source document.
func (c Card) Location() Location { return c.loc }

func (c Card) value() Value {
	m := cloneFields(c.fields)
	m.Set(DirectiveCard, StringValue(c.name))
	m.Set(FieldBody, StringValue(c.body))
	return MappingValue(m)
}
