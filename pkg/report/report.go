// Package report defines the record tree that every collector and benchmark
// produces: ordered objects, lists, and scalar leaves. The tree is the single
// data contract shared by the registry, the exporters, and any presentation
// surface built on top of the tool.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a node in a collected record. Exactly the types in this package
// implement it: String, Int, Float, Bool, Object, and List.
type Value interface {
	isValue()
}

// String is a text leaf.
type String string

// Int is an integer leaf (counts, sizes, clock speeds).
type Int int64

// Float is a floating-point leaf (percentages, rounded GB figures).
type Float float64

// Bool is a boolean leaf.
type Bool bool

// Field is one named entry of an Object. The name doubles as the display
// label and the export key.
type Field struct {
	Name  string
	Value Value
}

// Object is an ordered collection of uniquely named fields. The zero value
// is an empty object ready for use.
type Object []Field

// List is an ordered sequence of values, used for multi-instance hardware
// such as GPUs, disks, and network adapters.
type List []Value

func (String) isValue() {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (Bool) isValue()   {}
func (Object) isValue() {}
func (List) isValue()   {}

// Set adds a field or, if the name already exists, replaces its value in
// place so the field keeps its original position.
func (o *Object) Set(name string, v Value) {
	for i := range *o {
		if (*o)[i].Name == name {
			(*o)[i].Value = v
			return
		}
	}
	*o = append(*o, Field{Name: name, Value: v})
}

// Get returns the value of the named field.
func (o Object) Get(name string) (Value, bool) {
	for _, f := range o {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Merge appends every field of other, replacing fields with the same name.
func (o *Object) Merge(other Object) {
	for _, f := range other {
		o.Set(f.Name, f.Value)
	}
}

// ErrorObject returns the conventional failure record: an object whose only
// field is "Error" with a human-readable message.
func ErrorObject(msg string) Object {
	return Object{{Name: "Error", Value: String(msg)}}
}

// Errorf is ErrorObject with formatting.
func Errorf(format string, args ...any) Object {
	return ErrorObject(fmt.Sprintf(format, args...))
}

// Round2 rounds to two decimal places, the precision used for GB figures.
func Round2(f float64) Float {
	return Float(math.Round(f*100) / 100)
}

// Display renders a leaf as the string shown next to its label. Composite
// values render as an empty string; callers recurse into those instead.
func Display(v Value) string {
	switch t := v.(type) {
	case String:
		return string(t)
	case Int:
		return strconv.FormatInt(int64(t), 10)
	case Float:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(t))
	default:
		return ""
	}
}

// Equal reports whether two records have the same structure, field order,
// and leaf values.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Name != bv[i].Name || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Summary returns a short description of a record for logging.
func Summary(v Value) string {
	switch t := v.(type) {
	case Object:
		names := make([]string, 0, len(t))
		for _, f := range t {
			names = append(names, f.Name)
		}
		return "object{" + strings.Join(names, ", ") + "}"
	case List:
		return fmt.Sprintf("list[%d]", len(t))
	default:
		return Display(t)
	}
}
