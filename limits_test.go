package quillmark_test

import (
	"strings"
	"testing"

	quillmark "github.com/quillmark/quillmark-go"
)

func expectLimitError(t *testing.T, src string, lim quillmark.Limits) {
	t.Helper()
	_, err := quillmark.Decompose([]byte(src), lim)
	pe, ok := quillmark.AsParseError(err)
	if !ok || pe.Code != quillmark.CodeResourceLimitExceeded {
		t.Fatalf("got %v, want ResourceLimitExceeded", err)
	}
}

func TestLimits_MaxBytes(t *testing.T) {
	expectLimitError(t, strings.Repeat("a", 100), quillmark.Limits{MaxBytes: 99})

	if _, err := quillmark.Decompose([]byte(strings.Repeat("a", 100)), quillmark.Limits{MaxBytes: 100}); err != nil {
		t.Fatalf("at the limit: %v", err)
	}
}

func TestLimits_MaxHeaderBytes(t *testing.T) {
	header := "padding: " + strings.Repeat("x", 64) + "\n"
	expectLimitError(t, "---\n"+header+"---\nbody\n", quillmark.Limits{MaxHeaderBytes: 32})
}

func TestLimits_MaxCards(t *testing.T) {
	src := "---\nCARD: a\n---\nx\n---\nCARD: b\n---\ny\n"
	expectLimitError(t, src, quillmark.Limits{MaxCards: 1})

	if _, err := quillmark.Decompose([]byte(src), quillmark.Limits{MaxCards: 2}); err != nil {
		t.Fatalf("at the limit: %v", err)
	}
}

func TestLimits_MaxDepth(t *testing.T) {
	src := "---\na:\n  b:\n    c:\n      d: 1\n---\nbody\n"
	expectLimitError(t, src, quillmark.Limits{MaxDepth: 2})

	if _, err := quillmark.Decompose([]byte(src), quillmark.Limits{MaxDepth: 8}); err != nil {
		t.Fatalf("within the limit: %v", err)
	}
}

func TestLimits_MaxFields(t *testing.T) {
	src := "---\na: 1\nb: 2\nc: 3\n---\nbody\n"
	expectLimitError(t, src, quillmark.Limits{MaxFields: 2})
}

func TestLimits_MaxFieldsAppliesToNestedMappings(t *testing.T) {
	// The per-object key limit binds every mapping, not just the header's
	// top level.
	src := "---\nouter:\n  a: 1\n  b: 2\n  c: 3\n  d: 4\n---\nbody\n"
	expectLimitError(t, src, quillmark.Limits{MaxFields: 2})

	if _, err := quillmark.Decompose([]byte(src), quillmark.Limits{MaxFields: 4}); err != nil {
		t.Fatalf("within the limit: %v", err)
	}
}

func TestLimits_ZeroFieldsSelectDefaults(t *testing.T) {
	// A partially filled Limits still enforces sane defaults elsewhere.
	src := "---\ntitle: x\n---\nbody\n"
	if _, err := quillmark.Decompose([]byte(src), quillmark.Limits{MaxCards: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
