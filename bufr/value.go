package bufr

import "math"

// AsInt64 coerces v to int64.
//
// All integer types are accepted, as are floats carrying an integral value,
// since decoder bindings differ in how they surface BUFR longs. The second
// return value reports whether the coercion succeeded.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint8:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		f := float64(n)
		if f != math.Trunc(f) || f < math.MinInt64 || f > math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

// AsFloat64 coerces v to float64. Integers convert losslessly within float64
// precision; everything else fails.
func AsFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsString returns v as a string when it holds one.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// IsMissing reports whether v carries no information: nil, the MissingDouble
// sentinel for floats, or the MissingLong sentinel for integers.
func IsMissing(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case float64:
		return n == MissingDouble
	case float32:
		return false
	default:
		if i, ok := AsInt64(v); ok {
			return i == MissingLong
		}
		return false
	}
}
