// Package result provides Result, a two-case sum type holding either a
// success value or a failure value.  Unlike the conventional (V, error) pair
// it cannot be both or neither populated; the pair convention is reachable
// only through the explicit From and ToTuple bridges.
package result

import (
	"github.com/warpfork/go-errcat"

	"github.com/patrickhuber/go-types/variant"
)

// Result holds exactly one of a success value of type V or a failure value
// of type E.  Instances are immutable; construct them with Ok or Err.
// The zero Result is an Err carrying E's zero value.
type Result[V, E any] struct {
	ok    bool
	value V
	err   E
}

// Ok constructs a success Result.
func Ok[V, E any](value V) Result[V, E] {
	return Result[V, E]{ok: true, value: value}
}

// Err constructs a failure Result.
func Err[V, E any](err E) Result[V, E] {
	return Result[V, E]{err: err}
}

// From bridges a conventional dual-return call site into a Result: a nil
// error becomes Ok, anything else becomes Err.
func From[V any](value V, err error) Result[V, error] {
	if err != nil {
		return Err[V](err)
	}
	return Ok[V, error](value)
}

// IsOk reports whether the result holds a success value.
func (r Result[V, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds a failure value.
func (r Result[V, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value.  It panics on an Err result; call it
// only after branching on IsOk.
func (r Result[V, E]) Unwrap() V {
	if !r.ok {
		panic(errcat.Errorf(variant.ErrUnwrapOnErr, "unwrap of Err result: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the failure value.  It panics on an Ok result.
func (r Result[V, E]) UnwrapErr() E {
	if r.ok {
		panic(errcat.Errorf(variant.ErrUnwrapOnErr, "unwrap-err of Ok result: %v", r.value))
	}
	return r.err
}

// UnwrapOr returns the success value, or fallback on an Err result.
func (r Result[V, E]) UnwrapOr(fallback V) V {
	if !r.ok {
		return fallback
	}
	return r.value
}

// UnwrapOrElse returns the success value, or the result of calling fallback
// with the failure value.  Total; never panics.
func (r Result[V, E]) UnwrapOrElse(fallback func(E) V) V {
	if !r.ok {
		return fallback(r.err)
	}
	return r.value
}

// ToTuple bridges back to the dual-return convention.  Exactly one slot is
// populated: on Err the value slot is V's zero value, on Ok the error slot
// is E's zero value.  The returned bool tags which; it is true for Ok.
func (r Result[V, E]) ToTuple() (V, E, bool) {
	return r.value, r.err, r.ok
}

// Map applies f to the success value.  An Err result passes through with
// its failure value untouched.
func Map[V, V2, E any](r Result[V, E], f func(V) V2) Result[V2, E] {
	if !r.ok {
		return Err[V2](r.err)
	}
	return Ok[V2, E](f(r.value))
}

// MapErr applies f to the failure value.  An Ok result passes through with
// its success value untouched.
func MapErr[V, E, E2 any](r Result[V, E], f func(E) E2) Result[V, E2] {
	if r.ok {
		return Ok[V, E2](r.value)
	}
	return Err[V](f(r.err))
}

// AndThen chains a further fallible step: f runs only on Ok, and its result
// replaces r.  An Err result passes through unchanged.
func AndThen[V, V2, E any](r Result[V, E], f func(V) Result[V2, E]) Result[V2, E] {
	if !r.ok {
		return Err[V2](r.err)
	}
	return f(r.value)
}
