// Package variant provides closed sets of named cases and tagged values over
// them.  A CaseSet is declared once with a fixed list of case names; values
// belonging to the set carry exactly one case plus an optional payload, and
// Match performs case analysis that is checked for exhaustiveness at first
// use.  The enum, result and option packages build on this mechanism.
package variant

import (
	"unicode/utf8"

	"github.com/warpfork/go-errcat"
)

// CaseSet is a closed, ordered set of case names.  The set cannot be
// extended after declaration; every Value minted by the set's constructors
// belongs to exactly one of its cases.
type CaseSet struct {
	name  string
	cases []string
	index map[string]int
}

// Declare creates a CaseSet with the given case names, in declaration order.
// It fails with ErrEmptySet when no cases are given, ErrBadCaseName when a
// name is empty or not valid UTF-8, and ErrDuplicateCase when a name repeats.
func Declare(name string, caseNames ...string) (*CaseSet, error) {
	if len(caseNames) == 0 {
		return nil, errcat.Errorf(ErrEmptySet, "case set %q declared with no cases", name)
	}
	s := &CaseSet{
		name:  name,
		cases: make([]string, 0, len(caseNames)),
		index: make(map[string]int, len(caseNames)),
	}
	for i, c := range caseNames {
		if c == "" {
			return nil, errcat.Errorf(ErrBadCaseName, "case set %q: case %d is empty", name, i)
		}
		if !utf8.ValidString(c) {
			return nil, errcat.Errorf(ErrBadCaseName, "case set %q: case %d is not valid UTF-8", name, i)
		}
		if _, exists := s.index[c]; exists {
			return nil, errcat.Errorf(ErrDuplicateCase, "case set %q: case %q declared twice", name, c)
		}
		s.index[c] = i
		s.cases = append(s.cases, c)
	}
	return s, nil
}

// MustDeclare is like Declare but panics on error.  Declaration errors are
// fatal to setup, so the usual call site is a package-level var.
func MustDeclare(name string, caseNames ...string) *CaseSet {
	s, err := Declare(name, caseNames...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the declared name of the set.
func (s *CaseSet) Name() string {
	return s.name
}

// Len returns the number of declared cases.
func (s *CaseSet) Len() int {
	return len(s.cases)
}

// Cases returns the case names in declaration order.  The returned slice is
// a copy; mutating it does not affect the set.
func (s *CaseSet) Cases() []string {
	out := make([]string, len(s.cases))
	copy(out, s.cases)
	return out
}

// Index returns the declaration index of the named case.
func (s *CaseSet) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// CaseName returns the case name at the given declaration index.
func (s *CaseSet) CaseName(i int) (string, bool) {
	if i < 0 || i >= len(s.cases) {
		return "", false
	}
	return s.cases[i], true
}

// Contains reports whether name is a declared case.
func (s *CaseSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Unit constructs a payload-free Value of the named case.
// Fails with ErrUnknownCase when the name is outside the set.
func (s *CaseSet) Unit(name string) (Value, error) {
	return s.New(name, nil)
}

// MustUnit is like Unit but panics on error.
func (s *CaseSet) MustUnit(name string) Value {
	v, err := s.Unit(name)
	if err != nil {
		panic(err)
	}
	return v
}

// New constructs a Value of the named case carrying the given payload.
// The payload becomes owned by the returned Value; callers must not retain
// and mutate it.  Fails with ErrUnknownCase when the name is outside the set.
func (s *CaseSet) New(name string, payload any) (Value, error) {
	i, ok := s.index[name]
	if !ok {
		return Value{}, errcat.Errorf(ErrUnknownCase, "case set %q has no case %q", s.name, name)
	}
	return Value{set: s, index: i, payload: payload}, nil
}
