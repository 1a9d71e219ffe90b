package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// lookup walks a dotted path through nested objects. Numeric segments index arrays.
func lookup(v any, path string) (any, bool) {
	cur := v
	for _, key := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// scalarString renders strings and numbers; everything else is absent.
// Whole numbers lose their decimals, so 3.0 and 3 both read as "3".
func scalarString(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	case int, int32, int64, uint, uint32, uint64:
		s, err := cast.ToStringE(n)
		return s, err == nil
	case float64, float32:
		f, err := cast.ToFloat64E(n)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// firstString returns the first path holding a non-blank string or number.
func firstString(v any, paths ...string) (string, bool) {
	for _, p := range paths {
		raw, ok := lookup(v, p)
		if !ok {
			continue
		}
		s, ok := scalarString(raw)
		if ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

// firstNumber returns the first path holding a finite number or numeric string.
func firstNumber(v any, paths ...string) (float64, bool) {
	for _, p := range paths {
		raw, ok := lookup(v, p)
		if !ok {
			continue
		}
		if _, isBool := raw.(bool); isBool {
			continue
		}
		if s, isString := raw.(string); isString {
			raw = strings.TrimSpace(s)
		}
		f, err := cast.ToFloat64E(raw)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		return f, true
	}
	return 0, false
}

func firstBool(v any, paths ...string) (bool, bool) {
	for _, p := range paths {
		raw, ok := lookup(v, p)
		if !ok {
			continue
		}
		b, err := cast.ToBoolE(raw)
		if err != nil {
			continue
		}
		return b, true
	}
	return false, false
}
