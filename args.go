package keymap

import "sort"

// Arg carries build-call inputs: a batch of positional values, named values,
// or both. All positional values across a call are zipped to schema keys in
// declaration order before any named value is applied, regardless of how the
// Arg values are ordered at the call site.
type Arg struct {
	values []any
	named  []namedValue
}

type namedValue struct {
	key   string
	value any
}

// Pos supplies positional values, assigned to schema keys left to right.
// Multiple Pos arguments concatenate in call order.
func Pos(values ...any) Arg {
	return Arg{values: values}
}

// Key supplies a named value. A named value fills its key, overriding any
// positional assignment; when the same key is named more than once in a call,
// the later entry wins.
func Key(name string, value any) Arg {
	return Arg{named: []namedValue{{key: name, value: value}}}
}

// Named supplies a batch of named values. Entries are applied in sorted key
// order so behavior is deterministic; Key/Named arguments appearing later in
// the call still win on duplicates.
func Named(values map[string]any) Arg {
	named := make([]namedValue, 0, len(values))
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		named = append(named, namedValue{key: k, value: values[k]})
	}
	return Arg{named: named}
}

// gather flattens args into the full positional sequence and the named
// overlay, preserving call order within each category.
func gather(args []Arg) ([]any, []namedValue) {
	var pos []any
	var named []namedValue
	for _, a := range args {
		pos = append(pos, a.values...)
		named = append(named, a.named...)
	}
	return pos, named
}
