package conv

import "math"

// Int converts integral values to int. Floating point values are rejected
// even when integral so that a document cannot silently widen a kind.
func Int(in any) (int, bool) {
	switch v := in.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}

// Float converts floating point and integral values to float64.
func Float(in any) (float64, bool) {
	switch v := in.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	if i, ok := Int(in); ok {
		return float64(i), true
	}
	return 0, false
}

// Bool returns in when it is a bool.
func Bool(in any) (bool, bool) {
	v, ok := in.(bool)
	return v, ok
}

// Ints converts a sequence of integral values to a fresh []int.
func Ints(in any) ([]int, bool) {
	switch v := in.(type) {
	case []int:
		return append([]int{}, v...), true
	case []interface{}:
		out := make([]int, len(v))
		for i, item := range v {
			n, ok := Int(item)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	case []int64:
		out := make([]int, len(v))
		for i, item := range v {
			n, ok := Int(item)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	}
	return nil, false
}
