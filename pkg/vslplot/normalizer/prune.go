package normalizer

import "encoding/json"

// prune removes empty values from m in place, depth first.
// Nested objects are pruned and then dropped if nothing is left; arrays are
// dropped only when they have no elements (their contents are kept as is).
// Scalars are dropped when falsy: null, "", false and numeric zero. With
// keepZero set, false and numeric zero survive.
func prune(m map[string]any, keepZero bool) {
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			prune(val, keepZero)
			if len(val) == 0 {
				delete(m, k)
			}
		case []any:
			if len(val) == 0 {
				delete(m, k)
			}
		default:
			if isFalsy(val, keepZero) {
				delete(m, k)
			}
		}
	}
}

func isFalsy(v any, keepZero bool) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val && !keepZero
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0 && !keepZero
	default:
		if f, ok := toFloat(val); ok {
			return f == 0 && !keepZero
		}
		return false
	}
}

// toFloat converts a decoded JSON number into float64.
func toFloat(v any) (float64, bool) {
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
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
