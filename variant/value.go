package variant

import "fmt"

// Value is an immutable tagged value: it belongs to exactly one case of its
// CaseSet and may carry a case-specific payload.  The zero Value belongs to
// no set and matches no case; it is only produced by failed constructors.
type Value struct {
	set     *CaseSet
	index   int
	payload any
}

// Set returns the CaseSet the value belongs to, or nil for the zero Value.
func (v Value) Set() *CaseSet {
	return v.set
}

// Case returns the name of the value's case.
func (v Value) Case() string {
	if v.set == nil {
		return ""
	}
	return v.set.cases[v.index]
}

// Index returns the declaration index of the value's case, or -1 for the
// zero Value.
func (v Value) Index() int {
	if v.set == nil {
		return -1
	}
	return v.index
}

// Payload returns the case payload, or nil for unit cases.
func (v Value) Payload() any {
	return v.payload
}

// Is reports whether the value's case has the given name.
func (v Value) Is(name string) bool {
	return v.set != nil && v.set.cases[v.index] == name
}

func (v Value) String() string {
	if v.set == nil {
		return "<zero variant>"
	}
	if v.payload == nil {
		return fmt.Sprintf("%s.%s", v.set.name, v.set.cases[v.index])
	}
	return fmt.Sprintf("%s.%s(%v)", v.set.name, v.set.cases[v.index], v.payload)
}
