package enum

import "github.com/patrickhuber/go-types/variant"

// Value is one declared case of an enum Type.  Values are immutable and
// comparable with ==; two values are equal exactly when they name the same
// case of the same Type.  The zero Value belongs to no type and is invalid.
type Value struct {
	typ   *Type
	index int
}

// Valid reports whether the value names a declared case.  Only the zero
// Value is invalid; every constructor and decoder in this package either
// returns a valid value or fails.
func (v Value) Valid() bool {
	return v.typ != nil
}

// Type returns the declaring Type, or nil for the zero Value.
func (v Value) Type() *Type {
	return v.typ
}

// ExternalName returns the declared stable name of the case.  Total for
// every declared value; the zero Value yields "".
func (v Value) ExternalName() string {
	if v.typ == nil {
		return ""
	}
	name, _ := v.typ.set.CaseName(v.index)
	return name
}

// Ordinal returns the stable declaration index of the case, or -1 for the
// zero Value.
func (v Value) Ordinal() int {
	if v.typ == nil {
		return -1
	}
	return v.index
}

// Is reports whether the value's case has the given external name.
func (v Value) Is(name string) bool {
	return v.typ != nil && v.ExternalName() == name
}

func (v Value) String() string {
	if v.typ == nil {
		return "<zero enum value>"
	}
	return v.ExternalName()
}

// Variant returns the value as a unit variant of the type's case set, for
// case analysis with variant.Match.
func (v Value) Variant() variant.Value {
	if v.typ == nil {
		return variant.Value{}
	}
	return v.typ.set.MustUnit(v.ExternalName())
}
