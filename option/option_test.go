package option_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warpfork/go-errcat"

	"github.com/patrickhuber/go-types/option"
	"github.com/patrickhuber/go-types/variant"
)

func TestCaseExclusivity(t *testing.T) {
	tests := []struct {
		name string
		o    option.Option[int]
		some bool
	}{
		{"some", option.Some(3), true},
		{"some zero value", option.Some(0), true},
		{"none", option.None[int](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.some, tt.o.IsSome())
			assert.Equal(t, !tt.some, tt.o.IsNone())
		})
	}
}

func TestGet(t *testing.T) {
	v, ok := option.Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = option.None[int]().Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestGetOrElse(t *testing.T) {
	assert.Equal(t, 3, option.Some(3).GetOrElse(0))
	assert.Equal(t, 0, option.None[int]().GetOrElse(0))
	assert.Equal(t, 7, option.None[int]().GetOrElse(7))
}

func TestGetOrZero(t *testing.T) {
	assert.Equal(t, 3, option.Some(3).GetOrZero())
	assert.Equal(t, 0, option.None[int]().GetOrZero())
	assert.Equal(t, "", option.None[string]().GetOrZero())
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, 3, option.Some(3).Unwrap())

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")
		err, ok := recovered.(errcat.Error)
		require.True(t, ok, "panic value %v carries no category", recovered)
		require.Equal(t, variant.ErrUnwrapOnErr, err.Category())
	}()
	option.None[int]().Unwrap()
}

func TestMap(t *testing.T) {
	t.Run("applies to some", func(t *testing.T) {
		o := option.Map(option.Some(3), strconv.Itoa)
		assert.Equal(t, "3", o.Unwrap())
	})

	t.Run("none maps to none", func(t *testing.T) {
		calls := 0
		o := option.Map(option.None[int](), func(x int) int { calls++; return x })
		assert.True(t, o.IsNone())
		assert.Zero(t, calls)
	})
}

func TestAndThen(t *testing.T) {
	half := func(x int) option.Option[int] {
		if x%2 != 0 {
			return option.None[int]()
		}
		return option.Some(x / 2)
	}

	assert.Equal(t, 3, option.AndThen(option.Some(6), half).Unwrap())
	assert.True(t, option.AndThen(option.Some(5), half).IsNone())
	assert.True(t, option.AndThen(option.None[int](), half).IsNone())
}

func TestToResult(t *testing.T) {
	t.Run("some becomes ok", func(t *testing.T) {
		r := option.ToResult(option.Some(3), "missing")
		require.True(t, r.IsOk())
		assert.Equal(t, 3, r.Unwrap())
	})

	t.Run("none becomes err", func(t *testing.T) {
		r := option.ToResult(option.None[int](), "missing")
		require.True(t, r.IsErr())
		assert.Equal(t, "missing", r.UnwrapErr())
	})
}

func TestPtrBridges(t *testing.T) {
	t.Run("from nil pointer", func(t *testing.T) {
		assert.True(t, option.FromPtr[int](nil).IsNone())
	})

	t.Run("from pointer", func(t *testing.T) {
		x := 3
		o := option.FromPtr(&x)
		require.True(t, o.IsSome())
		assert.Equal(t, 3, o.Unwrap())

		// The option owns its payload: mutating the source is not observed.
		x = 9
		assert.Equal(t, 3, o.Unwrap())
	})

	t.Run("to pointer", func(t *testing.T) {
		assert.Nil(t, option.None[int]().Ptr())

		o := option.Some(3)
		p := o.Ptr()
		require.NotNil(t, p)
		assert.Equal(t, 3, *p)

		// Ptr hands out a copy, never the option's own payload.
		*p = 9
		assert.Equal(t, 3, o.Unwrap())
	})
}

func TestZeroOptionIsNone(t *testing.T) {
	var o option.Option[string]
	assert.True(t, o.IsNone())
	assert.Equal(t, "fallback", o.GetOrElse("fallback"))
}
