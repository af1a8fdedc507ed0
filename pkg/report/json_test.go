package report

import (
	"encoding/json"
	"testing"
)

func TestMarshalPreservesFieldOrder(t *testing.T) {
	obj := Object{
		{Name: "Zebra", Value: Int(1)},
		{Name: "Apple", Value: Int(2)},
		{Name: "Mango", Value: Int(3)},
	}
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"Zebra":1,"Apple":2,"Mango":3}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   Value
	}{
		{"scalars", Object{
			{Name: "S", Value: String("text")},
			{Name: "I", Value: Int(-7)},
			{Name: "F", Value: Float(12.25)},
			{Name: "B", Value: Bool(false)},
		}},
		{"nested", Object{
			{Name: "Disks", Value: List{
				Object{{Name: "Device", Value: String("/dev/sda1")}, {Name: "Usage (%)", Value: Float(42.5)}},
				Object{{Name: "Device", Value: String("/dev/sdb1")}, {Name: "Usage (%)", Value: Float(7.25)}},
			}},
		}},
		{"whole floats", Object{
			{Name: "Total Swap (GB)", Value: Float(0)},
			{Name: "Total RAM (GB)", Value: Float(16)},
			{Name: "Usage (%)", Value: Round2(2.0)},
		}},
		{"empty object", Object{}},
		{"empty list in object", Object{{Name: "GPUs", Value: List{}}}},
		{"list of scalars", Object{{Name: "USB Devices", Value: List{String("a"), String("b")}}}},
		{"deep", Object{{Name: "A", Value: Object{{Name: "B", Value: Object{{Name: "C", Value: List{Int(1), List{Int(2)}}}}}}}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := json.Marshal(c.in)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			out, err := DecodeJSON(data)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if !Equal(c.in, out) {
				t.Errorf("round trip changed record:\n in: %#v\nout: %#v", c.in, out)
			}
		})
	}
}

func TestWholeFloatStaysFloat(t *testing.T) {
	data, err := json.Marshal(Float(0))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "0.0" {
		t.Fatalf("expected 0.0, got %s", data)
	}

	out, err := DecodeJSON([]byte(`{"Total Swap (GB)":0.0,"Count":0}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	obj := out.(Object)
	if v, _ := obj.Get("Total Swap (GB)"); v != Float(0) {
		t.Errorf("expected Float(0), got %#v", v)
	}
	if v, _ := obj.Get("Count"); v != Int(0) {
		t.Errorf("expected Int(0), got %#v", v)
	}
}

func TestDecodeNumberKinds(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"count":5,"pct":42.5,"exp":1e3}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	obj, ok := v.(Object)
	if !ok {
		t.Fatalf("expected Object, got %T", v)
	}

	if c, _ := obj.Get("count"); c != Int(5) {
		t.Errorf("count: expected Int(5), got %#v", c)
	}
	if p, _ := obj.Get("pct"); p != Float(42.5) {
		t.Errorf("pct: expected Float(42.5), got %#v", p)
	}
	if e, _ := obj.Get("exp"); e != Float(1000) {
		t.Errorf("exp: expected Float(1000), got %#v", e)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, bad := range []string{``, `{`, `{"a":}`, `{"a":1} trailing`} {
		if _, err := DecodeJSON([]byte(bad)); err == nil {
			t.Errorf("expected error decoding %q", bad)
		}
	}
}

func TestIndentedOutputDecodes(t *testing.T) {
	in := Object{{Name: "A", Value: List{Object{{Name: "B", Value: Int(1)}}}}}
	compact, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	indented, err := json.MarshalIndent(in, "", "    ")
	if err != nil {
		t.Fatalf("indent failed: %v", err)
	}
	if len(indented) <= len(compact) {
		t.Fatal("expected indented form to be longer")
	}
	out, err := DecodeJSON(indented)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !Equal(in, out) {
		t.Error("indented round trip changed record")
	}
}
