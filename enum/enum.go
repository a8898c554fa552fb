// Package enum provides safe enumerations: fixed-domain scalar values whose
// construction outside the declared domain is impossible, including via
// deserialization of malformed input.  Each declared Type is backed by a
// closed variant.CaseSet and registered process-wide by name.
package enum

import (
	"strings"

	"github.com/warpfork/go-errcat"

	"github.com/patrickhuber/go-types/result"
	"github.com/patrickhuber/go-types/variant"
)

// Type is a declared enumeration: a named, closed set of external case
// names with stable ordinals.  Declare is the only way to obtain one.
type Type struct {
	name        string
	set         *variant.CaseSet
	insensitive bool
	folded      map[string]int
	fallback    int // case index for fail-open decoding, -1 when fail-closed
}

// Option configures a Type at declaration.
type Option func(*options)

type options struct {
	insensitive bool
	fallback    string
}

// WithCaseInsensitive makes Parse fold case when matching external names.
// Declared names must still be unique after folding.
func WithCaseInsensitive() Option {
	return func(o *options) { o.insensitive = true }
}

// WithFallback opts the type into fail-open decoding: encoded names outside
// the declared set decode to the named case instead of failing.  The
// fallback must itself be a declared case, so decoding still cannot mint a
// value outside the domain.  Parse is never fail-open.
func WithFallback(caseName string) Option {
	return func(o *options) { o.fallback = caseName }
}

// Declare creates and registers an enum Type with the given external case
// names, in declaration order.  It fails with the same categories as
// variant.Declare for bad case lists, with ErrDuplicateCase when the type
// name is already registered or two names collide after case folding, and
// with ErrUnknownCase when the configured fallback is not a declared case.
func Declare(name string, cases []string, opts ...Option) (*Type, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	set, err := variant.Declare(name, cases...)
	if err != nil {
		return nil, err
	}

	t := &Type{name: name, set: set, fallback: -1}

	if o.insensitive {
		t.insensitive = true
		t.folded = make(map[string]int, len(cases))
		for i, c := range cases {
			f := strings.ToLower(c)
			if prev, exists := t.folded[f]; exists {
				return nil, errcat.Errorf(variant.ErrDuplicateCase,
					"enum %q: cases %q and %q collide under case folding", name, cases[prev], c)
			}
			t.folded[f] = i
		}
	}

	if o.fallback != "" {
		i, ok := set.Index(o.fallback)
		if !ok {
			return nil, errcat.Errorf(variant.ErrUnknownCase,
				"enum %q: fallback %q is not a declared case", name, o.fallback)
		}
		t.fallback = i
	}

	if err := register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDeclare is like Declare but panics on error.
func MustDeclare(name string, cases []string, opts ...Option) *Type {
	t, err := Declare(name, cases, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the declared type name.
func (t *Type) Name() string {
	return t.name
}

// Cases returns the external case names in declaration order.
func (t *Type) Cases() []string {
	return t.set.Cases()
}

// Len returns the number of declared cases.
func (t *Type) Len() int {
	return t.set.Len()
}

// CaseSet returns the underlying closed case set.
func (t *Type) CaseSet() *variant.CaseSet {
	return t.set
}

// Parse resolves an external name to a declared value.  Matching is exact
// unless the type was declared WithCaseInsensitive.  It fails with
// ErrUnknownCase when the text matches no declared case.
func (t *Type) Parse(text string) result.Result[Value, error] {
	if i, ok := t.set.Index(text); ok {
		return result.Ok[Value, error](Value{typ: t, index: i})
	}
	if t.insensitive {
		if i, ok := t.folded[strings.ToLower(text)]; ok {
			return result.Ok[Value, error](Value{typ: t, index: i})
		}
	}
	return result.Err[Value, error](errcat.Errorf(variant.ErrUnknownCase,
		"enum %q has no case matching %q", t.name, text))
}

// ValueOf returns the declared value with the given external name, matched
// exactly.  Fails with ErrUnknownCase.
func (t *Type) ValueOf(name string) (Value, error) {
	i, ok := t.set.Index(name)
	if !ok {
		return Value{}, errcat.Errorf(variant.ErrUnknownCase, "enum %q has no case %q", t.name, name)
	}
	return Value{typ: t, index: i}, nil
}

// MustValueOf is like ValueOf but panics on error.  The usual call site is
// a package-level var naming each case once.
func (t *Type) MustValueOf(name string) Value {
	v, err := t.ValueOf(name)
	if err != nil {
		panic(err)
	}
	return v
}

// ByOrdinal returns the declared value at the given declaration index.
func (t *Type) ByOrdinal(i int) (Value, error) {
	if _, ok := t.set.CaseName(i); !ok {
		return Value{}, errcat.Errorf(variant.ErrUnknownCase, "enum %q has no ordinal %d", t.name, i)
	}
	return Value{typ: t, index: i}, nil
}

// Values returns every declared value in declaration order.
func (t *Type) Values() []Value {
	out := make([]Value, t.set.Len())
	for i := range out {
		out[i] = Value{typ: t, index: i}
	}
	return out
}
