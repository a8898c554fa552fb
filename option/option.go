// Package option provides Option, a two-case sum type for values that may
// be legitimately absent.  Absence is distinct from failure; use ToResult to
// promote an absence into a failure for uniform downstream handling.
package option

import (
	"github.com/warpfork/go-errcat"

	"github.com/patrickhuber/go-types/result"
	"github.com/patrickhuber/go-types/variant"
)

// Option holds either a present value of type V or nothing.  Instances are
// immutable; construct them with Some or None.  The zero Option is None.
type Option[V any] struct {
	some  bool
	value V
}

// Some constructs a present Option.
func Some[V any](value V) Option[V] {
	return Option[V]{some: true, value: value}
}

// None constructs an absent Option.
func None[V any]() Option[V] {
	return Option[V]{}
}

// FromPtr bridges a nilable pointer into an Option: nil becomes None,
// anything else becomes Some of the pointed-to value.
func FromPtr[V any](p *V) Option[V] {
	if p == nil {
		return None[V]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[V]) IsSome() bool {
	return o.some
}

// IsNone reports whether the option is absent.
func (o Option[V]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[V]) Get() (V, bool) {
	return o.value, o.some
}

// GetOrElse returns the value, or fallback when absent.  Total.
func (o Option[V]) GetOrElse(fallback V) V {
	if !o.some {
		return fallback
	}
	return o.value
}

// GetOrZero returns the value, or V's zero value when absent.
func (o Option[V]) GetOrZero() V {
	return o.value
}

// Unwrap returns the value.  It panics on None; call it only after
// branching on IsSome.
func (o Option[V]) Unwrap() V {
	if !o.some {
		panic(errcat.Errorf(variant.ErrUnwrapOnErr, "unwrap of None option"))
	}
	return o.value
}

// Ptr bridges back to the nilable-pointer convention: nil for None, a
// pointer to a copy of the value for Some.  The copy keeps the option's own
// payload unaliased.
func (o Option[V]) Ptr() *V {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Map applies f to the present value; None maps to None.
func Map[V, V2 any](o Option[V], f func(V) V2) Option[V2] {
	if !o.some {
		return None[V2]()
	}
	return Some(f(o.value))
}

// AndThen chains a further optional step: f runs only on Some, and its
// result replaces o.  None passes through.
func AndThen[V, V2 any](o Option[V], f func(V) Option[V2]) Option[V2] {
	if !o.some {
		return None[V2]()
	}
	return f(o.value)
}

// ToResult promotes the option into a Result: Some becomes Ok and None
// becomes Err carrying errIfNone.
func ToResult[V, E any](o Option[V], errIfNone E) result.Result[V, E] {
	if !o.some {
		return result.Err[V](errIfNone)
	}
	return result.Ok[V, E](o.value)
}
