package quillmark

import (
	"errors"
	"fmt"
)

// Structural and boundary error codes. A structural error means the document
// (or schema definition) cannot be interpreted at all: the first one aborts
// the whole operation and no partial record is produced.
const (
	CodeMalformedStructure      = "parse::malformed_structure"
	CodeInvalidHeader           = "parse::invalid_header"
	CodeReservedKeyCollision    = "parse::reserved_key_collision"
	CodeInvalidCardName         = "parse::invalid_card_name"
	CodeMisplacedQuillTag       = "parse::misplaced_quill_tag"
	CodeMultipleGlobalBlocks    = "parse::multiple_global_blocks"
	CodeNameCollision           = "parse::name_collision"
	CodeInvalidSchemaDefinition = "schema::invalid_definition"
	CodeResourceLimitExceeded   = "limits::resource_limit_exceeded"
)

// Location is a position in the source document. Line and Column are
// 1-based; Offset is the byte offset of the position.
type Location struct {
	Line   int
	Column int
	Offset int
}

func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// ParseError is a single structural or resource-limit failure.
type ParseError struct {
	Code    string
	Message string
	Loc     *Location
}

func (e *ParseError) Error() string {
	if e.Loc != nil {
		return fmt.Sprintf("%s: %s at %s", e.Code, e.Message, e.Loc)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsParseError extracts a *ParseError from an error chain.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func parseErrf(code string, loc *Location, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...), Loc: loc}
}

func limitErrf(loc *Location, format string, args ...any) *ParseError {
	return parseErrf(CodeResourceLimitExceeded, loc, format, args...)
}
