package quillmark

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// parsedHeader is the result of interpreting one raw block's YAML header:
// the author fields (directives and reserved keys already extracted and
// checked), plus whichever directive was present.
type parsedHeader struct {
	fields   Fields
	cardName string
	hasCard  bool
	quillTag string
	hasQuill bool
}

// parseHeader decodes a block header as a YAML mapping, extracts the CARD
// and QUILL directives, and rejects reserved keys, duplicate keys and
// non-mapping headers. Line numbers in returned errors are absolute within
// the source document.
func parseHeader(blk rawBlock, lim Limits) (parsedHeader, *ParseError) {
	var out parsedHeader
	out.fields = NewFields()
	if !blk.hasHeader || strings.TrimSpace(blk.header) == "" {
		return out, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(blk.header), &root); err != nil {
		return out, parseErrf(CodeInvalidHeader, &blk.headerLoc,
			"header is not valid YAML: %v", yamlMessage(err))
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		// All-comment or otherwise empty header.
		return out, nil
	}
	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		loc := blk.absLoc(node)
		return out, parseErrf(CodeInvalidHeader, &loc,
			"header must be a YAML mapping, got %s", yamlKindName(node))
	}

	seen := make(map[string]bool, len(node.Content)/2)
	fieldCount := 0
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		keyLoc := blk.absLoc(keyNode)
		if seen[key] {
			return out, parseErrf(CodeInvalidHeader, &keyLoc,
				"duplicate key %q in header", key)
		}
		seen[key] = true

		switch key {
		case DirectiveCard:
			name, ok := scalarString(valNode)
			if !ok {
				loc := blk.absLoc(valNode)
				return out, parseErrf(CodeInvalidHeader, &loc,
					"%s directive must be a string", DirectiveCard)
			}
			if !validCardName(name) {
				loc := blk.absLoc(valNode)
				return out, parseErrf(CodeInvalidCardName, &loc,
					"invalid card name %q: must match [a-z_][a-z0-9_]*", name)
			}
			out.cardName = name
			out.hasCard = true
			continue
		case DirectiveQuill:
			tag, ok := scalarString(valNode)
			if !ok || !validQuillTag(tag) {
				loc := blk.absLoc(valNode)
				return out, parseErrf(CodeInvalidHeader, &loc,
					"%s directive must be a template name matching [a-z0-9][a-z0-9_-]*", DirectiveQuill)
			}
			out.quillTag = tag
			out.hasQuill = true
			continue
		case FieldBody, FieldCards:
			return out, parseErrf(CodeReservedKeyCollision, &keyLoc,
				"%q is reserved and cannot be used as a field name", key)
		}

		fieldCount++
		if fieldCount > lim.MaxFields {
			return out, limitErrf(&keyLoc,
				"too many fields in header: limit is %d", lim.MaxFields)
		}
		v, perr := valueFromYAMLNode(valNode, blk, 1, lim)
		if perr != nil {
			return out, perr
		}
		out.fields.Set(key, v)
	}
	if out.hasCard && out.hasQuill {
		return out, parseErrf(CodeMisplacedQuillTag, &blk.headerLoc,
			"%s directive is not allowed on a card block", DirectiveQuill)
	}
	return out, nil
}

// valueFromYAMLNode converts a decoded YAML node into a Value, enforcing the
// nesting depth limit as it descends.
func valueFromYAMLNode(n *yaml.Node, blk rawBlock, depth int, lim Limits) (Value, *ParseError) {
	if depth > lim.MaxDepth {
		loc := blk.absLoc(n)
		return Value{}, limitErrf(&loc,
			"header nesting exceeds maximum depth %d", lim.MaxDepth)
	}
	switch n.Kind {
	case yaml.AliasNode:
		return valueFromYAMLNode(n.Alias, blk, depth, lim)
	case yaml.ScalarNode:
		return scalarValue(n), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, perr := valueFromYAMLNode(c, blk, depth+1, lim)
			if perr != nil {
				return Value{}, perr
			}
			items = append(items, v)
		}
		return SequenceValue(items...), nil
	case yaml.MappingNode:
		if len(n.Content)/2 > lim.MaxFields {
			loc := blk.absLoc(n)
			return Value{}, limitErrf(&loc,
				"too many fields in mapping: %d (limit is %d)", len(n.Content)/2, lim.MaxFields)
		}
		m := NewFields()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if _, dup := m.Get(keyNode.Value); dup {
				loc := blk.absLoc(keyNode)
				return Value{}, parseErrf(CodeInvalidHeader, &loc,
					"duplicate key %q in header", keyNode.Value)
			}
			v, perr := valueFromYAMLNode(valNode, blk, depth+1, lim)
			if perr != nil {
				return Value{}, perr
			}
			m.Set(keyNode.Value, v)
		}
		return MappingValue(m), nil
	default:
		loc := blk.absLoc(n)
		return Value{}, parseErrf(CodeInvalidHeader, &loc,
			"unsupported YAML node in header")
	}
}

// scalarValue maps a YAML scalar node to a Value following the core schema:
// null, booleans and numbers resolve by tag, everything else is a string.
func scalarValue(n *yaml.Node) Value {
	switch n.Tag {
	case "!!null":
		return NullValue()
	case "!!bool":
		if b, err := strconv.ParseBool(strings.ToLower(n.Value)); err == nil {
			return BoolValue(b)
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return IntValue(i)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return NumberValue(f)
		}
	}
	return StringValue(n.Value)
}

// scalarString returns the node's value when it is a plain string scalar.
func scalarString(n *yaml.Node) (string, bool) {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", false
	}
	return n.Value, true
}

// validCardName reports whether name matches [a-z_][a-z0-9_]*.
func validCardName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// yamlKindName names a node kind for error messages.
func yamlKindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// validQuillTag reports whether tag matches [a-z0-9][a-z0-9_-]*, the same
// pattern template descriptors use for their names.
func validQuillTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
		case r == '_' || r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// absLoc converts a node position (1-based within the header) into an
// absolute document location, including the node's byte offset.
func (b rawBlock) absLoc(n *yaml.Node) Location {
	off := b.headerLoc.Offset
	rest := b.header
	for l := 1; l < n.Line; l++ {
		idx := strings.IndexByte(rest, '\n')
		if idx < 0 {
			break
		}
		off += idx + 1
		rest = rest[idx+1:]
	}
	off += n.Column - 1
	return Location{
		Line:   b.headerLoc.Line + n.Line - 1,
		Column: n.Column,
		Offset: off,
	}
}

// yamlMessage strips the library's "yaml: " prefix so error text reads as
// ours.
func yamlMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "yaml: ")
}
