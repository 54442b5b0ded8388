package quillmark

import (
	"sort"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the JSON-compatible name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "array"
	case KindMapping:
		return "object"
	default:
		return "unknown"
	}
}

// Fields is an ordered string→Value mapping. Key order follows the source
// document and is preserved for diagnostics only, never for semantics.
type Fields = *orderedmap.OrderedMap[string, Value]

// NewFields returns an empty ordered field mapping.
func NewFields() Fields { return orderedmap.New[string, Value]() }

// Value is a tagged union over null, boolean, number, string, sequence, and
// ordered mapping. Values are immutable once built.
type Value struct {
	kind  Kind
	b     bool
	num   float64
	i     int64
	isInt bool
	s     string
	seq   []Value
	m     Fields
}

// NullValue returns the null Value. The zero Value is also null.
func NullValue() Value { return Value{kind: KindNull} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue returns an integer-backed number Value.
func IntValue(n int64) Value { return Value{kind: KindNumber, i: n, num: float64(n), isInt: true} }

// NumberValue returns a float-backed number Value.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// SequenceValue returns a sequence Value over the given items.
func SequenceValue(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// MappingValue returns a mapping Value backed by m. The mapping must not be
// mutated after it is handed over.
func MappingValue(m Fields) Value {
	if m == nil {
		m = NewFields()
	}
	return Value{kind: KindMapping, m: m}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload when the value is a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the number payload as int64 when it was built from an
// integer, or when the float payload is integral.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.isInt {
		return v.i, true
	}
	if v.num == float64(int64(v.num)) {
		return int64(v.num), true
	}
	return 0, false
}

// AsFloat returns the number payload as float64.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsSequence returns the item slice of a sequence value. Callers must not
// mutate the returned slice.
func (v Value) AsSequence() ([]Value, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.seq, true
}

// AsMapping returns the ordered mapping of an object value. Callers must not
// mutate the returned mapping.
func (v Value) AsMapping() (Fields, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.m, true
}

// Equal reports deep equality. Mapping key order is ignored; integer and
// float numbers compare numerically.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		if v.isInt && o.isInt {
			return v.i == o.i
		}
		return v.num == o.num
	case KindString:
		return v.s == o.s
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if v.m.Len() != o.m.Len() {
			return false
		}
		for p := v.m.Oldest(); p != nil; p = p.Next() {
			ov, ok := o.m.Get(p.Key)
			if !ok || !p.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// ValueOf converts a plain Go value into a Value. Maps lose their key order
// and are emitted in sorted-key order for determinism; time.Time becomes an
// RFC 3339 string. Unsupported types become null.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return t
	case bool:
		return BoolValue(t)
	case string:
		return StringValue(t)
	case int:
		return IntValue(int64(t))
	case int8:
		return IntValue(int64(t))
	case int16:
		return IntValue(int64(t))
	case int32:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case uint:
		return IntValue(int64(t))
	case uint8:
		return IntValue(int64(t))
	case uint16:
		return IntValue(int64(t))
	case uint32:
		return IntValue(int64(t))
	case uint64:
		return IntValue(int64(t))
	case float32:
		return NumberValue(float64(t))
	case float64:
		return NumberValue(t)
	case time.Time:
		return StringValue(t.Format(time.RFC3339))
	case []Value:
		return SequenceValue(t...)
	case []any:
		items := make([]Value, len(t))
		for i, it := range t {
			items[i] = ValueOf(it)
		}
		return SequenceValue(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewFields()
		for _, k := range keys {
			m.Set(k, ValueOf(t[k]))
		}
		return MappingValue(m)
	default:
		return NullValue()
	}
}

// Interface converts the value back into plain Go data: nil, bool, int64 or
// float64, string, []any, or map[string]any (key order is lost).
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if v.isInt {
			return v.i
		}
		return v.num
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, it := range v.seq {
			out[i] = it.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, v.m.Len())
		for p := v.m.Oldest(); p != nil; p = p.Next() {
			out[p.Key] = p.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// cloneFields returns a shallow copy of m preserving key order. Values are
// immutable, so sharing them is safe.
func cloneFields(m Fields) Fields {
	out := NewFields()
	if m == nil {
		return out
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	return out
}
