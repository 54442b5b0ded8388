package quillmark

import "context"

// Decompose splits src into delimiter-separated blocks, parses each block's
// YAML header, and assembles the result into a Document: global fields and
// body from the first block, cards from every CARD-tagged block in source
// order. It fails fast on the first structural error.
//
// Limits are optional; when given, the last element wins and zero fields
// fall back to the defaults.
func Decompose(src []byte, opts ...Limits) (*Document, error) {
	lim := normalizeLimits(opts)
	if int64(len(src)) > lim.MaxBytes {
		return nil, limitErrf(nil,
			"input too large: %d bytes (max %d)", len(src), lim.MaxBytes)
	}

	blocks, perr := splitBlocks(string(src), lim)
	if perr != nil {
		return nil, perr
	}

	doc := &Document{fields: NewFields()}
	haveGlobal := false
	for idx, blk := range blocks {
		hdr, perr := parseHeader(blk, lim)
		if perr != nil {
			return nil, perr
		}
		if hdr.hasQuill && idx > 0 {
			return nil, parseErrf(CodeMisplacedQuillTag, &blk.headerLoc,
				"%s directive is only allowed on the document's first block", DirectiveQuill)
		}
		if !hdr.hasCard {
			if idx > 0 {
				return nil, parseErrf(CodeMultipleGlobalBlocks, &blk.openerLoc,
					"global metadata block must be the document's first block")
			}
			doc.fields = hdr.fields
			doc.body = blk.body
			doc.quillTag = hdr.quillTag
			doc.loc = blockLoc(blk)
			haveGlobal = true
			continue
		}

		if len(doc.cards) >= lim.MaxCards {
			return nil, limitErrf(&blk.openerLoc,
				"too many cards: limit is %d", lim.MaxCards)
		}
		doc.cards = append(doc.cards, Card{
			name:   hdr.cardName,
			fields: hdr.fields,
			body:   blk.body,
			loc:    blk.openerLoc,
		})
	}

	if haveGlobal {
		for _, c := range doc.cards {
			if _, clash := doc.fields.Get(c.name); clash {
				return nil, parseErrf(CodeNameCollision, &c.loc,
					"card name %q collides with a global field of the same name", c.name)
			}
		}
	}
	return doc, nil
}

// Process decomposes src and, when s is non-nil, validates the resulting
// document against the schema. Structural failures surface as the error;
// validation findings come back as Diagnostics alongside the (possibly
// defaulted) document.
func Process(ctx context.Context, src []byte, s *Schema, opts ...Limits) (*Document, Diagnostics, error) {
	doc, err := Decompose(src, opts...)
	if err != nil {
		return nil, nil, err
	}
	if s == nil {
		return doc, nil, nil
	}
	out, diags := s.Validate(ctx, doc)
	return out, diags, nil
}

func blockLoc(blk rawBlock) Location {
	if blk.hasHeader {
		return blk.openerLoc
	}
	return Location{Line: 1, Column: 1, Offset: 0}
}
