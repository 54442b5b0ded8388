package quill_test

import (
	"context"
	"testing"

	quillmark "github.com/quillmark/quillmark-go"
	"github.com/quillmark/quillmark-go/quill"
)

const letterToml = `[Quill]
name = "letter"
backend = "typst"
glue = "glue.typ"
description = "A formal letter"

[fields]
title = { type = "string", description = "Letter subject" }
status = { type = "string", description = "Workflow state", default = "draft" }
sent = { type = "date", description = "Send date", required = false }

[cards.recipient]
title = "Recipient"
[cards.recipient.fields]
name = { type = "string", description = "Full name" }
`

func TestParse_Descriptor(t *testing.T) {
	q, err := quill.Parse([]byte(letterToml))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Name != "letter" || q.Backend != "typst" || q.Glue != "glue.typ" {
		t.Fatalf("metadata: %+v", q)
	}
	if q.Fields["status"].Default != "draft" {
		t.Fatalf("status default = %v", q.Fields["status"].Default)
	}
	if _, ok := q.Cards["recipient"]; !ok {
		t.Fatalf("cards: %+v", q.Cards)
	}
}

func TestParse_RejectsBadMetadata(t *testing.T) {
	cases := map[string]string{
		"missing name":    "[Quill]\nbackend = \"typst\"\n",
		"bad name":        "[Quill]\nname = \"Not Valid\"\nbackend = \"typst\"\n",
		"missing backend": "[Quill]\nname = \"ok\"\n",
		"broken toml":     "[Quill\nname = \"x\"\n",
	}
	for name, src := range cases {
		if _, err := quill.Parse([]byte(src)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestCompile_FromDescriptor(t *testing.T) {
	q, err := quill.Parse([]byte(letterToml))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, err := q.Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	src := "---\nQUILL: letter\n---\nDear someone,\n---\nCARD: recipient\nname: Ada Lovelace\n---\n"
	doc, diags, err := quillmark.Process(context.Background(), []byte(src), s)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	// title is required and missing.
	if !diags.HasErrors() {
		t.Fatalf("expected a missing-title diagnostic")
	}
	if v, _ := doc.Field("status"); !v.Equal(quillmark.StringValue("draft")) {
		t.Fatalf("status = %v", v)
	}
}

func TestCompile_SurfacesBadDeclarations(t *testing.T) {
	src := "[Quill]\nname = \"x\"\nbackend = \"typst\"\n\n[fields]\nbad = { type = \"varchar\" }\n"
	q, err := quill.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := q.Compile(); err == nil {
		t.Fatalf("expected a schema definition error")
	}
}

func TestCheck_HygieneWarnings(t *testing.T) {
	src := "[Quill]\nname = \"x\"\nbackend = \"typst\"\n\n[fields]\nuntitled = { type = \"string\" }\n\n[cards.empty]\ntitle = \"Empty\"\n"
	q, err := quill.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	diags := q.Check()
	if len(diags) == 0 {
		t.Fatalf("expected hygiene warnings")
	}
	if diags.HasErrors() {
		t.Fatalf("hygiene findings must be warnings: %v", diags)
	}
	seen := map[string]bool{}
	for _, d := range diags {
		seen[d.Code] = true
	}
	if !seen[quill.CodeMissingDescription] || !seen[quill.CodeEmptyCard] {
		t.Fatalf("codes: %v", diags)
	}
}
