// Package codec provides stock keymap.Coercion implementations for casted
// construction: numeric and bool parsing, string rendering, time layouts, and
// loose scalar/JSON decoding of raw cell values.
package codec

import (
	"fmt"
	"math"
	"strconv"

	keymap "github.com/reoring/keymap"
)

// Identity passes values through unchanged. Useful to make a passthrough key
// explicit in a positional SetCoercions call.
var Identity keymap.Coercion = func(v any) (any, error) { return v, nil }

// Int coerces integers, integral floats, and decimal strings to int64.
var Int keymap.Coercion = func(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return nil, fmt.Errorf("uint64 %d overflows int64", n)
		}
		return int64(n), nil
	case float32:
		return intFromFloat(float64(n))
	case float64:
		return intFromFloat(n)
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return nil, fmt.Errorf("cannot coerce %T to int64", v)
	}
}

func intFromFloat(f float64) (any, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("float %v is not an integer", f)
	}
	return int64(f), nil
}

// Float coerces numeric values and decimal strings to float64.
var Float keymap.Coercion = func(v any) (any, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return nil, fmt.Errorf("cannot coerce %T to float64", v)
	}
}

// Bool coerces bools and strconv-style strings ("1", "t", "true", ...) to bool.
var Bool keymap.Coercion = func(v any) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(b)
	default:
		return nil, fmt.Errorf("cannot coerce %T to bool", v)
	}
}

// String renders any value to its fmt representation.
var String keymap.Coercion = func(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}
