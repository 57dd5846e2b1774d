package filters

import (
	"reflect"
	"strings"

	"github.com/meteogo/bufrobs/bufr"
)

// Filter decides whether a decoded value satisfies a column constraint.
type Filter interface {
	// Match reports whether value satisfies the filter.
	Match(value any) bool

	// Max returns the largest integer the filter can accept, when such a
	// bound exists. The streamer uses it to stop reading messages once a
	// count filter cannot match anymore.
	Max() (int64, bool)
}

// Equal returns a filter matching values equal to want. Numeric values
// compare across types, so Equal(100) matches both int64(100) and 100.0.
func Equal(want any) Filter {
	return equalFilter{want: want}
}

// In returns a filter matching any of the given values.
func In(values ...any) Filter {
	return setFilter{members: values}
}

// Range returns a filter matching values between lo and hi, inclusive at
// both ends. A nil bound leaves that side open; Range(nil, nil) matches
// everything.
func Range(lo, hi any) Filter {
	return rangeFilter{lo: lo, hi: hi}
}

// Func wraps a predicate into a filter. A Func filter carries no upper
// bound.
func Func(fn func(value any) bool) Filter {
	return funcFilter{fn: fn}
}

type equalFilter struct {
	want any
}

func (f equalFilter) Match(value any) bool {
	return equalValues(f.want, value)
}

func (f equalFilter) Max() (int64, bool) {
	return bufr.AsInt64(f.want)
}

type setFilter struct {
	members []any
}

func (f setFilter) Match(value any) bool {
	for _, m := range f.members {
		if equalValues(m, value) {
			return true
		}
	}

	return false
}

// Max returns the largest member. The bound exists only when every member
// is an integer.
func (f setFilter) Max() (int64, bool) {
	if len(f.members) == 0 {
		return 0, false
	}
	var max int64
	for i, m := range f.members {
		n, ok := bufr.AsInt64(m)
		if !ok {
			return 0, false
		}
		if i == 0 || n > max {
			max = n
		}
	}

	return max, true
}

type rangeFilter struct {
	lo any
	hi any
}

func (f rangeFilter) Match(value any) bool {
	if f.lo == nil && f.hi == nil {
		return true
	}
	if value == nil {
		return false
	}
	if f.lo != nil {
		c, ok := compareValues(value, f.lo)
		if !ok || c < 0 {
			return false
		}
	}
	if f.hi != nil {
		c, ok := compareValues(value, f.hi)
		if !ok || c > 0 {
			return false
		}
	}

	return true
}

func (f rangeFilter) Max() (int64, bool) {
	if f.hi == nil {
		return 0, false
	}

	return bufr.AsInt64(f.hi)
}

type funcFilter struct {
	fn func(value any) bool
}

func (f funcFilter) Match(value any) bool {
	return f.fn(value)
}

func (f funcFilter) Max() (int64, bool) {
	return 0, false
}

// equalValues compares two scalars, numerically when both sides are
// numeric. Non-scalar values fall back to deep equality.
func equalValues(want, got any) bool {
	if want == nil || got == nil {
		return want == nil && got == nil
	}
	if wf, ok := bufr.AsFloat64(want); ok {
		gf, ok := bufr.AsFloat64(got)
		return ok && wf == gf
	}
	if ws, ok := want.(string); ok {
		gs, ok := got.(string)
		return ok && ws == gs
	}

	return reflect.DeepEqual(want, got)
}

// compareValues orders two values of compatible kinds: numerically for
// numbers, lexically for strings.
func compareValues(a, b any) (int, bool) {
	if af, ok := bufr.AsFloat64(a); ok {
		bf, ok := bufr.AsFloat64(b)
		if !ok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}

		return strings.Compare(as, bs), true
	}

	return 0, false
}
