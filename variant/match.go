package variant

import (
	"sort"
	"strings"

	"github.com/warpfork/go-errcat"
)

// Arms is the handler table for Match.  Cases maps case names to handlers;
// Default, when non-nil, handles every case not named in Cases.  Default is
// a separate named field rather than a magic map key so call sites that
// swallow unhandled cases are visible at a glance.
type Arms struct {
	Cases   map[string]func(payload any)
	Default func(v Value)
}

// Match invokes exactly the handler for the value's actual case.
//
// Coverage is checked before dispatch: when Cases names a case outside the
// value's set the call fails with ErrUnknownCase (a misspelled arm must not
// silently never fire), and when Cases omits declared cases and no Default
// arm is supplied the call fails with ErrNonExhaustiveMatch naming every
// missing case.  No handler runs when an error is returned.
func Match(v Value, arms Arms) error {
	handler, err := checkArms(v, arms.Cases, arms.Default != nil)
	if err != nil {
		return err
	}
	if handler != nil {
		handler(v.payload)
		return nil
	}
	arms.Default(v)
	return nil
}

// ValueArms is the handler table for MatchValue.  Same coverage law as Arms.
type ValueArms[T any] struct {
	Cases   map[string]func(payload any) T
	Default func(v Value) T
}

// MatchValue is the expression form of Match: the selected arm produces the
// returned value.
func MatchValue[T any](v Value, arms ValueArms[T]) (T, error) {
	var zero T
	names := make(map[string]struct{}, len(arms.Cases))
	for name := range arms.Cases {
		names[name] = struct{}{}
	}
	if err := checkCoverage(v, names, arms.Default != nil); err != nil {
		return zero, err
	}
	if handler, ok := arms.Cases[v.Case()]; ok {
		return handler(v.payload), nil
	}
	return arms.Default(v), nil
}

// checkArms validates coverage and returns the selected case handler, or nil
// when the default arm should run.
func checkArms(v Value, cases map[string]func(payload any), hasDefault bool) (func(any), error) {
	names := make(map[string]struct{}, len(cases))
	for name := range cases {
		names[name] = struct{}{}
	}
	if err := checkCoverage(v, names, hasDefault); err != nil {
		return nil, err
	}
	if handler, ok := cases[v.Case()]; ok {
		return handler, nil
	}
	return nil, nil
}

func checkCoverage(v Value, armNames map[string]struct{}, hasDefault bool) error {
	if v.set == nil {
		return errcat.Errorf(ErrUnknownCase, "match on zero variant value")
	}
	for name := range armNames {
		if !v.set.Contains(name) {
			return errcat.Errorf(ErrUnknownCase, "match arm %q is not a case of set %q", name, v.set.name)
		}
	}
	if hasDefault {
		return nil
	}
	var missing []string
	for _, c := range v.set.cases {
		if _, ok := armNames[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errcat.Errorf(ErrNonExhaustiveMatch,
			"match over set %q missing cases: %s", v.set.name, strings.Join(missing, ", "))
	}
	return nil
}
