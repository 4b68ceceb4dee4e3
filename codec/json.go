package codec

import (
	"fmt"

	json "github.com/goccy/go-json"

	keymap "github.com/reoring/keymap"
)

// JSON decodes a raw string or []byte cell into the value it encodes
// (map[string]any, []any, float64, string, bool, or nil).
var JSON keymap.Coercion = func(v any) (any, error) {
	var raw []byte
	switch b := v.(type) {
	case []byte:
		raw = b
	case string:
		raw = []byte(b)
	default:
		return nil, fmt.Errorf("cannot decode %T as JSON", v)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
