package quillmark

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// MarshalJSON renders the value as JSON. Mapping keys are emitted in source
// order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		if v.isInt {
			return json.Marshal(v.i)
		}
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.s)
	case KindSequence:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, it := range v.seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := it.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindMapping:
		var buf bytes.Buffer
		buf.WriteByte('{')
		first := true
		for p := v.m.Oldest(); p != nil; p = p.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			k, err := json.Marshal(p.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			b, err := p.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return []byte("null"), nil
}

// ValueFromJSON parses a JSON document into a Value. Object key order is not
// preserved; keys are sorted for determinism.
func ValueFromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return NullValue(), err
	}
	return valueOfJSON(raw), nil
}

func valueOfJSON(raw any) Value {
	switch t := raw.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(i)
		}
		f, _ := t.Float64()
		return NumberValue(f)
	case []any:
		items := make([]Value, len(t))
		for i, it := range t {
			items[i] = valueOfJSON(it)
		}
		return SequenceValue(items...)
	case map[string]any:
		conv := make(map[string]any, len(t))
		for k, it := range t {
			conv[k] = any(valueOfJSON(it))
		}
		return ValueOf(conv)
	default:
		return ValueOf(raw)
	}
}
