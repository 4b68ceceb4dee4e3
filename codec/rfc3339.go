package codec

import (
	"fmt"
	"time"

	keymap "github.com/reoring/keymap"
)

// Time returns a Coercion parsing strings with the given layout. time.Time
// values pass through unchanged.
func Time(layout string) keymap.Coercion {
	return func(v any) (any, error) {
		switch t := v.(type) {
		case time.Time:
			return t, nil
		case string:
			return time.Parse(layout, t)
		default:
			return nil, fmt.Errorf("cannot coerce %T to time.Time", v)
		}
	}
}

// RFC3339 coerces RFC3339 strings to time.Time, accepting the Nano form with
// a plain RFC3339 fallback.
var RFC3339 keymap.Coercion = func(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return parseRFC3339(t)
	default:
		return nil, fmt.Errorf("cannot coerce %T to time.Time", v)
	}
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
