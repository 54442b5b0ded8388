package quillmark

import (
	"time"

	"github.com/spf13/cast"
)

const dateLayout = "2006-01-02"

// coerceValue checks v against the declared type, applying the lenient
// scalar conversions authors expect from YAML frontmatter: quoted numbers
// and booleans convert, numbers and booleans stringify, and a lone scalar
// satisfies an array field as its single element. Explicit null never
// satisfies any type. The returned Value is the canonical form.
func coerceValue(v Value, t FieldType) (Value, bool) {
	if v.IsNull() {
		return v, false
	}
	switch t {
	case TypeString:
		if s, ok := v.AsString(); ok {
			return StringValue(s), true
		}
		if _, ok := v.AsBool(); ok {
			return coerceScalarString(v)
		}
		if v.Kind() == KindNumber {
			return coerceScalarString(v)
		}
	case TypeNumber:
		if i, ok := v.AsInt(); ok {
			return IntValue(i), true
		}
		if f, ok := v.AsFloat(); ok {
			return NumberValue(f), true
		}
		if s, ok := v.AsString(); ok {
			if f, err := cast.ToFloat64E(s); err == nil {
				return NumberValue(f), true
			}
		}
		if b, ok := v.AsBool(); ok {
			return IntValue(int64(cast.ToInt(b))), true
		}
	case TypeBoolean:
		if b, ok := v.AsBool(); ok {
			return BoolValue(b), true
		}
		if s, ok := v.AsString(); ok {
			if b, err := cast.ToBoolE(s); err == nil {
				return BoolValue(b), true
			}
		}
	case TypeArray:
		if seq, ok := v.AsSequence(); ok {
			return SequenceValue(seq...), true
		}
		return SequenceValue(v), true
	case TypeObject:
		if _, ok := v.AsMapping(); ok {
			return v, true
		}
	case TypeDate:
		if s, ok := v.AsString(); ok {
			if ts, err := time.Parse(dateLayout, s); err == nil {
				return StringValue(ts.Format(dateLayout)), true
			}
		}
	case TypeDateTime:
		if s, ok := v.AsString(); ok {
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				return StringValue(ts.Format(time.RFC3339)), true
			}
		}
	}
	return v, false
}

func coerceScalarString(v Value) (Value, bool) {
	if s, err := cast.ToStringE(v.Interface()); err == nil {
		return StringValue(s), true
	}
	return v, false
}
