package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	keymap "github.com/reoring/keymap"
)

// Scalar types a raw string cell using YAML scalar rules: "3" becomes an int,
// "2.5" a float64, "true" a bool, "null" nil, anything else stays a string.
// Useful for casting whole rows of text cells without a per-key layout.
var Scalar keymap.Coercion = func(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("cannot type %T as a scalar", v)
	}
	if s == "" {
		return s, nil
	}
	var out any
	if err := yaml.Unmarshal([]byte(s), &out); err != nil {
		// Not parseable on its own; keep the raw string.
		return s, nil
	}
	switch out.(type) {
	case map[string]any, []any:
		// The cell holds structure, not a scalar; keep the raw string.
		return s, nil
	}
	return out, nil
}
