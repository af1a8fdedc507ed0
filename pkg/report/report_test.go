package report

import "testing"

func TestObjectSetPreservesOrder(t *testing.T) {
	var obj Object
	obj.Set("B", Int(1))
	obj.Set("A", Int(2))
	obj.Set("C", Int(3))

	if len(obj) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(obj))
	}
	for i, want := range []string{"B", "A", "C"} {
		if obj[i].Name != want {
			t.Errorf("field %d: expected %q, got %q", i, want, obj[i].Name)
		}
	}
}

func TestObjectSetReplacesInPlace(t *testing.T) {
	var obj Object
	obj.Set("A", Int(1))
	obj.Set("B", Int(2))
	obj.Set("A", Int(10))

	if len(obj) != 2 {
		t.Fatalf("expected 2 fields after replace, got %d", len(obj))
	}
	if obj[0].Name != "A" {
		t.Errorf("replaced field moved: first field is %q", obj[0].Name)
	}
	v, ok := obj.Get("A")
	if !ok || v != Int(10) {
		t.Errorf("expected A=10, got %v (ok=%v)", v, ok)
	}
}

func TestObjectMerge(t *testing.T) {
	var a, b Object
	a.Set("X", Int(1))
	a.Set("Y", Int(2))
	b.Set("Y", Int(20))
	b.Set("Z", Int(30))

	a.Merge(b)

	if len(a) != 3 {
		t.Fatalf("expected 3 fields after merge, got %d", len(a))
	}
	if v, _ := a.Get("Y"); v != Int(20) {
		t.Errorf("expected merged Y=20, got %v", v)
	}
	if a[1].Name != "Y" {
		t.Errorf("merged field moved: second field is %q", a[1].Name)
	}
}

func TestErrorObject(t *testing.T) {
	obj := ErrorObject("Unknown category")
	if len(obj) != 1 {
		t.Fatalf("expected single field, got %d", len(obj))
	}
	v, ok := obj.Get("Error")
	if !ok {
		t.Fatal("expected Error field")
	}
	if v != String("Unknown category") {
		t.Errorf("unexpected message: %v", v)
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		in   Value
		want string
	}{
		{String("hello"), "hello"},
		{Int(42), "42"},
		{Float(12.5), "12.5"},
		{Bool(true), "true"},
		{Object{}, ""},
		{List{}, ""},
	}
	for _, c := range cases {
		if got := Display(c.in); got != c.want {
			t.Errorf("Display(%#v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := Object{
		{Name: "A", Value: Int(1)},
		{Name: "B", Value: List{String("x"), Object{{Name: "C", Value: Float(2.5)}}}},
	}
	b := Object{
		{Name: "A", Value: Int(1)},
		{Name: "B", Value: List{String("x"), Object{{Name: "C", Value: Float(2.5)}}}},
	}
	if !Equal(a, b) {
		t.Error("identical records compared unequal")
	}

	reordered := Object{a[1], a[0]}
	if Equal(a, reordered) {
		t.Error("field order should matter")
	}

	if Equal(Int(1), Float(1)) {
		t.Error("Int and Float should not compare equal")
	}
	if Equal(Object{}, List{}) {
		t.Error("empty Object and empty List should not compare equal")
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(15.6789); got != Float(15.68) {
		t.Errorf("Round2(15.6789) = %v, want 15.68", got)
	}
	if got := Round2(2.0); got != Float(2) {
		t.Errorf("Round2(2.0) = %v, want 2", got)
	}
}
