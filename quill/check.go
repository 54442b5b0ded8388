package quill

import (
	"fmt"
	"sort"

	quillmark "github.com/quillmark/quillmark-go"
)

// Hygiene finding codes reported by Check.
const (
	CodeMissingDescription = "quill::missing_description"
	CodeEmptyCard          = "quill::empty_card"
)

// Check reports descriptor hygiene findings. Everything it returns is a
// warning: the descriptor still parses, compiles and validates documents.
func (q *Quill) Check() quillmark.Diagnostics {
	var diags quillmark.Diagnostics
	if q.Description == "" {
		diags = append(diags, warn(CodeMissingDescription, "Quill",
			"descriptor has no description"))
	}
	diags = append(diags, checkFields(q.Fields, "fields")...)
	for _, name := range sortedNames(q.Cards) {
		c := q.Cards[name]
		if len(c.Fields) == 0 {
			diags = append(diags, warn(CodeEmptyCard, "cards."+name,
				fmt.Sprintf("card %q declares no fields", name)))
			continue
		}
		diags = append(diags, checkFields(c.Fields, "cards."+name+".fields")...)
	}
	return diags
}

func checkFields(fields map[string]Field, path string) quillmark.Diagnostics {
	var diags quillmark.Diagnostics
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if fields[n].Description == "" {
			diags = append(diags, warn(CodeMissingDescription, path+"."+n,
				fmt.Sprintf("field %q has no description", n)))
		}
	}
	return diags
}

func sortedNames(m map[string]Card) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func warn(code, path, msg string) quillmark.Diagnostic {
	return quillmark.Diagnostic{
		Severity: quillmark.SeverityWarning,
		Code:     code,
		Message:  msg,
		Path:     path,
	}
}
