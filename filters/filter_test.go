package filters

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meteogo/bufrobs/bufr"
)

func TestEqual(t *testing.T) {
	t.Run("numeric across types", func(t *testing.T) {
		f := Equal(100)
		require.True(t, f.Match(int64(100)))
		require.True(t, f.Match(100.0))
		require.False(t, f.Match(int64(99)))
		require.False(t, f.Match("100"))
	})

	t.Run("string", func(t *testing.T) {
		f := Equal("TEMP")
		require.True(t, f.Match("TEMP"))
		require.False(t, f.Match("SYNOP"))
		require.False(t, f.Match(nil))
	})

	t.Run("nil matches only nil", func(t *testing.T) {
		f := Equal(nil)
		require.True(t, f.Match(nil))
		require.False(t, f.Match(0))
	})

	t.Run("max", func(t *testing.T) {
		max, ok := Equal(5).Max()
		require.True(t, ok)
		require.Equal(t, int64(5), max)

		_, ok = Equal("TEMP").Max()
		require.False(t, ok)
	})
}

func TestIn(t *testing.T) {
	f := In(894, 895)
	require.True(t, f.Match(int64(894)))
	require.True(t, f.Match(895.0))
	require.False(t, f.Match(int64(896)))
	require.False(t, f.Match(nil))

	t.Run("max over integer members", func(t *testing.T) {
		max, ok := In(3, 1, 2).Max()
		require.True(t, ok)
		require.Equal(t, int64(3), max)
	})

	t.Run("no max with non integer member", func(t *testing.T) {
		_, ok := In(1, "TEMP").Max()
		require.False(t, ok)
	})

	t.Run("empty set matches nothing", func(t *testing.T) {
		f := In()
		require.False(t, f.Match(1))
		_, ok := f.Max()
		require.False(t, ok)
	})
}

func TestRange(t *testing.T) {
	t.Run("inclusive at both ends", func(t *testing.T) {
		f := Range(95, 100)
		require.True(t, f.Match(int64(95)))
		require.True(t, f.Match(int64(100)))
		require.True(t, f.Match(97.5))
		require.False(t, f.Match(int64(90)))
		require.False(t, f.Match(int64(101)))
	})

	t.Run("open lower bound", func(t *testing.T) {
		f := Range(nil, 100)
		require.True(t, f.Match(int64(100)))
		require.True(t, f.Match(int64(-40)))
		require.False(t, f.Match(int64(101)))
	})

	t.Run("open upper bound", func(t *testing.T) {
		f := Range(273.15, nil)
		require.True(t, f.Match(273.15))
		require.True(t, f.Match(300.0))
		require.False(t, f.Match(200.0))
	})

	t.Run("unbounded matches everything", func(t *testing.T) {
		f := Range(nil, nil)
		require.True(t, f.Match(int64(42)))
		require.True(t, f.Match("anything"))
		require.True(t, f.Match(nil))
	})

	t.Run("nil value fails a bounded range", func(t *testing.T) {
		require.False(t, Range(nil, 100).Match(nil))
	})

	t.Run("string bounds compare lexically", func(t *testing.T) {
		f := Range("07000", "08000")
		require.True(t, f.Match("07510"))
		require.False(t, f.Match("09000"))
		require.False(t, f.Match(7510))
	})

	t.Run("incompatible kinds fail", func(t *testing.T) {
		require.False(t, Range(0, 100).Match("50"))
	})

	t.Run("max comes from the upper bound", func(t *testing.T) {
		max, ok := Range(nil, 2).Max()
		require.True(t, ok)
		require.Equal(t, int64(2), max)

		_, ok = Range(2, nil).Max()
		require.False(t, ok)
	})
}

func TestFunc(t *testing.T) {
	f := Func(func(value any) bool {
		v, ok := bufr.AsFloat64(value)
		return ok && v > 273.15
	})
	require.True(t, f.Match(300.0))
	require.False(t, f.Match(200.0))
	require.False(t, f.Match("300"))

	_, ok := f.Max()
	require.False(t, ok)
}
