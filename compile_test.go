package quillmark_test

import (
	"testing"

	quillmark "github.com/quillmark/quillmark-go"
)

func boolPtr(b bool) *bool { return &b }

func valuePtr(v quillmark.Value) *quillmark.Value { return &v }

func TestCompile_RejectsUnknownType(t *testing.T) {
	_, err := quillmark.Compile(map[string]quillmark.FieldSchema{
		"title": {Type: "varchar"},
	}, nil)
	pe, ok := quillmark.AsParseError(err)
	if !ok || pe.Code != quillmark.CodeInvalidSchemaDefinition {
		t.Fatalf("got %v, want InvalidSchemaDefinition", err)
	}
}

func TestCompile_RejectsReservedFieldNames(t *testing.T) {
	for _, name := range []string{"BODY", "CARDS", "CARD", "QUILL"} {
		_, err := quillmark.Compile(map[string]quillmark.FieldSchema{
			name: {Type: quillmark.TypeString},
		}, nil)
		if pe, ok := quillmark.AsParseError(err); !ok || pe.Code != quillmark.CodeInvalidSchemaDefinition {
			t.Fatalf("name %s: got %v, want InvalidSchemaDefinition", name, err)
		}
	}
}

func TestCompile_RejectsNonConformingDefault(t *testing.T) {
	_, err := quillmark.Compile(map[string]quillmark.FieldSchema{
		"count": {Type: quillmark.TypeNumber, Default: valuePtr(quillmark.StringValue("lots"))},
	}, nil)
	if pe, ok := quillmark.AsParseError(err); !ok || pe.Code != quillmark.CodeInvalidSchemaDefinition {
		t.Fatalf("got %v, want InvalidSchemaDefinition", err)
	}
}

func TestCompile_RejectsBadCardNames(t *testing.T) {
	_, err := quillmark.Compile(nil, map[string]quillmark.CardSchema{
		"Product": {},
	})
	if pe, ok := quillmark.AsParseError(err); !ok || pe.Code != quillmark.CodeInvalidSchemaDefinition {
		t.Fatalf("got %v, want InvalidSchemaDefinition", err)
	}
}

func TestCompile_RejectsCardGlobalCollision(t *testing.T) {
	_, err := quillmark.Compile(
		map[string]quillmark.FieldSchema{"note": {Type: quillmark.TypeString}},
		map[string]quillmark.CardSchema{"note": {}},
	)
	if pe, ok := quillmark.AsParseError(err); !ok || pe.Code != quillmark.CodeInvalidSchemaDefinition {
		t.Fatalf("got %v, want InvalidSchemaDefinition", err)
	}
}

func TestCompile_CardNamesSorted(t *testing.T) {
	s := quillmark.MustCompile(nil, map[string]quillmark.CardSchema{
		"zebra": {}, "ant": {}, "moth": {},
	})
	got := s.CardNames()
	want := []string{"ant", "moth", "zebra"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMustCompile_PanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	quillmark.MustCompile(map[string]quillmark.FieldSchema{"x": {Type: "nope"}}, nil)
}
