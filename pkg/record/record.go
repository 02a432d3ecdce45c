// Package record provides field lookup and coercion helpers for raw backend
// records whose field names and value types vary by endpoint.
package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Coalesce returns the value of the first key whose value is neither absent
// nor nil. Zero and empty string are valid results. Returns nil when no key
// matches.
func Coalesce(rec domain.RawRecord, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// Has reports whether any of the keys holds a non-nil value.
func Has(rec domain.RawRecord, keys ...string) bool {
	return Coalesce(rec, keys...) != nil
}

// String coalesces keys and renders the result as a string. Numbers are
// formatted without exponent or trailing zeros. Returns "" when absent.
func String(rec domain.RawRecord, keys ...string) string {
	return ToString(Coalesce(rec, keys...))
}

// ToString renders a scalar value as a string. Composite values and nil
// render as "".
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Float coalesces keys and converts the result to a finite float64.
func Float(rec domain.RawRecord, keys ...string) (float64, bool) {
	return ToFloat(Coalesce(rec, keys...))
}

// ToFloat converts numbers and numeric strings to float64. Empty strings,
// non-numeric strings, NaN and infinities are rejected.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether v is a number or a numeric string.
func IsNumeric(v any) bool {
	_, ok := ToFloat(v)
	return ok
}

// Number coerces form input to a number the way the marketplace UI does:
// anything non-numeric, empty or non-finite becomes 0. It never fails.
func Number(v any) float64 {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	f, ok := ToFloat(v)
	if !ok {
		return 0
	}
	return f
}

// NonNegative coerces v with Number and clamps negative results to 0.
func NonNegative(v any) float64 {
	return max(Number(v), 0)
}

// Bool coalesces keys and interprets the result as a bool. Accepts JSON
// bools, "true"/"false" strings and 0/1 numbers.
func Bool(rec domain.RawRecord, keys ...string) (bool, bool) {
	switch t := Coalesce(rec, keys...).(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, false
		}
		return b, true
	case nil:
		return false, false
	default:
		f, ok := ToFloat(t)
		if !ok {
			return false, false
		}
		return f != 0, true
	}
}

// Object returns the value at key as a RawRecord.
func Object(rec domain.RawRecord, key string) (domain.RawRecord, bool) {
	obj, ok := rec[key].(map[string]any)
	return obj, ok
}

// Slice returns the value at key as a slice.
func Slice(rec domain.RawRecord, key string) ([]any, bool) {
	s, ok := rec[key].([]any)
	return s, ok
}
