package quillmark_test

import (
	"testing"

	quillmark "github.com/quillmark/quillmark-go"
)

func TestValue_KindsAndAccessors(t *testing.T) {
	var zero quillmark.Value
	if !zero.IsNull() {
		t.Fatalf("zero value should be null")
	}
	if b, ok := quillmark.BoolValue(true).AsBool(); !ok || !b {
		t.Fatalf("bool accessor")
	}
	if i, ok := quillmark.IntValue(7).AsInt(); !ok || i != 7 {
		t.Fatalf("int accessor")
	}
	if f, ok := quillmark.NumberValue(1.5).AsFloat(); !ok || f != 1.5 {
		t.Fatalf("float accessor")
	}
	if _, ok := quillmark.NumberValue(1.5).AsInt(); ok {
		t.Fatalf("1.5 should not read as int")
	}
	if i, ok := quillmark.NumberValue(3).AsInt(); !ok || i != 3 {
		t.Fatalf("integral float should read as int")
	}
	if s, ok := quillmark.StringValue("x").AsString(); !ok || s != "x" {
		t.Fatalf("string accessor")
	}
}

func TestValue_Equal(t *testing.T) {
	if !quillmark.IntValue(3).Equal(quillmark.NumberValue(3)) {
		t.Fatalf("3 == 3.0 numerically")
	}
	if quillmark.StringValue("3").Equal(quillmark.IntValue(3)) {
		t.Fatalf("string and number must differ")
	}

	a := quillmark.NewFields()
	a.Set("x", quillmark.IntValue(1))
	a.Set("y", quillmark.IntValue(2))
	b := quillmark.NewFields()
	b.Set("y", quillmark.IntValue(2))
	b.Set("x", quillmark.IntValue(1))
	if !quillmark.MappingValue(a).Equal(quillmark.MappingValue(b)) {
		t.Fatalf("mapping equality must ignore key order")
	}
}

func TestValueOf_RoundTrip(t *testing.T) {
	v := quillmark.ValueOf(map[string]any{
		"n":    42,
		"f":    2.5,
		"ok":   true,
		"name": "x",
		"list": []any{1, "two"},
	})
	got := v.Interface().(map[string]any)
	if got["n"] != int64(42) || got["f"] != 2.5 || got["ok"] != true || got["name"] != "x" {
		t.Fatalf("round trip: %#v", got)
	}
	list := got["list"].([]any)
	if list[0] != int64(1) || list[1] != "two" {
		t.Fatalf("list: %#v", list)
	}
}

func TestValue_JSON(t *testing.T) {
	m := quillmark.NewFields()
	m.Set("b", quillmark.IntValue(2))
	m.Set("a", quillmark.IntValue(1))
	m.Set("s", quillmark.SequenceValue(quillmark.StringValue("x"), quillmark.NullValue()))
	data, err := quillmark.MappingValue(m).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Source order, not sorted order.
	if string(data) != `{"b":2,"a":1,"s":["x",null]}` {
		t.Fatalf("json = %s", data)
	}

	back, err := quillmark.ValueFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(quillmark.MappingValue(m)) {
		t.Fatalf("round trip mismatch: %v", back)
	}
}
