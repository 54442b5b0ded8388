package quillmark

import (
	"errors"
	"fmt"
	"strings"
)

// Validation diagnostic codes. Diagnostics mean the input is structurally
// sound but schema-nonconformant; they are collected, never fail-fast.
const (
	CodeMissingRequiredField = "validation::missing_required_field"
	CodeTypeMismatch         = "validation::type_mismatch"
	CodeUnknownCardVariant   = "validation::unknown_card_variant"
)

// Severity expresses how a diagnostic should be treated downstream: error
// severity should block rendering, warning severity should not.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	// Path locates the offending field, e.g. "title" or "cards[3].dates".
	// Empty when the finding is not tied to one field.
	Path string
	// Loc points into the source document when derivable from the
	// originating block span.
	Loc *Location
}

// Diagnostics is a collection of validation findings that implements error.
type Diagnostics []Diagnostic

// Error summarizes the first few diagnostics.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(ds)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		d := ds[i]
		if d.Path != "" {
			fmt.Fprintf(b, "%s at %s", d.Code, d.Path)
		} else {
			b.WriteString(d.Code)
		}
	}
	if n := len(ds); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasErrors reports whether any diagnostic carries error severity.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// AsDiagnostics extracts Diagnostics from an error using errors.As.
func AsDiagnostics(err error) (Diagnostics, bool) {
	if err == nil {
		return nil, false
	}
	var ds Diagnostics
	if errors.As(err, &ds) {
		return ds, true
	}
	return nil, false
}
