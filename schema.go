package keymap

import "strings"

// reservedKeys are names that collide with the accessor surface of Record.
// They are rejected at declaration time so a schema can always be promoted to
// generated typed accessors without renaming keys.
var reservedKeys = map[string]struct{}{
	"Keys":   {},
	"Values": {},
	"Get":    {},
	"At":     {},
	"Len":    {},
	"Name":   {},
	"String": {},
	"Equal":  {},
}

// Schema is an ordered, de-duplicated, immutable set of named keys, declared
// once and reused for any number of build calls. The only permitted mutation
// after declaration is SetCoercions; complete it before sharing the schema
// across goroutines, after which the schema is safe for concurrent reads.
type Schema struct {
	name      string
	keys      []string
	index     map[string]int
	coercions []Coercion // aligned to keys; nil entries pass values through
	policy    Policy
}

// New declares a Strict schema from the given key names. Every element is
// whitespace-split, so New("Fruit", "apple orange papaya") and
// New("Fruit", "apple", "orange", "papaya") declare the same schema, in the
// given order.
func New(name string, keys ...string) (*Schema, error) {
	return newSchema(name, splitKeys(keys), Strict)
}

// NewSparse is New with the Sparse policy: keys left unassigned by a build
// call are filled with Absent instead of failing.
func NewSparse(name string, keys ...string) (*Schema, error) {
	return newSchema(name, splitKeys(keys), Sparse)
}

// MustNew is like New but panics on error.
func MustNew(name string, keys ...string) *Schema {
	s, err := New(name, keys...)
	if err != nil {
		panic(err)
	}
	return s
}

// MustNewSparse is like NewSparse but panics on error.
func MustNewSparse(name string, keys ...string) *Schema {
	s, err := NewSparse(name, keys...)
	if err != nil {
		panic(err)
	}
	return s
}

func splitKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.Fields(k)...)
	}
	return out
}

func newSchema(name string, keys []string, policy Policy) (*Schema, error) {
	if len(keys) == 0 {
		return nil, &DefinitionError{Schema: name, Code: CodeEmptySchema}
	}
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		if !validKeyName(k) {
			return nil, &DefinitionError{Schema: name, Code: CodeInvalidKeyName, Key: k}
		}
		if _, ok := reservedKeys[k]; ok {
			return nil, &DefinitionError{Schema: name, Code: CodeReservedKey, Key: k}
		}
		if _, dup := index[k]; dup {
			return nil, &DefinitionError{Schema: name, Code: CodeDuplicateKey, Key: k}
		}
		index[k] = i
	}
	return &Schema{
		name:      name,
		keys:      keys,
		index:     index,
		coercions: make([]Coercion, len(keys)),
		policy:    policy,
	}, nil
}

// validKeyName reports whether k is a plain identifier. Leading underscores
// are rejected alongside non-identifier characters.
func validKeyName(k string) bool {
	if k == "" || k[0] == '_' {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Name returns the schema name used in diagnostics and record rendering.
func (s *Schema) Name() string { return s.name }

// Policy returns the schema's validation policy.
func (s *Schema) Policy() Policy { return s.policy }

// Len returns the number of keys.
func (s *Schema) Len() int { return len(s.keys) }

// Has reports whether key is a schema member.
func (s *Schema) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Keys returns the key names in declaration order. The returned slice is a
// copy; the underlying order never changes.
func (s *Schema) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Coercions returns the currently attached coercions by key. Keys without an
// attachment are omitted.
func (s *Schema) Coercions() map[string]Coercion {
	out := make(map[string]Coercion, len(s.keys))
	for i, f := range s.coercions {
		if f != nil {
			out[s.keys[i]] = f
		}
	}
	return out
}

// SetCoercions attaches coercion functions for casted builds. Positional
// values align to key order; named values attach by key. A supplied entry
// overwrites any previous attachment for that key and a nil entry leaves it
// untouched (positional) or clears it (named); keys not mentioned keep their
// attachment. The operation validates everything before mutating, so a
// failed call changes nothing, and repeating a call has no further effect.
//
// Caller contract: finish attaching coercions before the schema is shared
// across goroutines; SetCoercions must not race concurrent build calls.
func (s *Schema) SetCoercions(args ...Arg) error {
	pos, named := gather(args)
	if len(pos) > len(s.keys) {
		return &DefinitionError{Schema: s.name, Code: CodeTooManyValues}
	}
	next := append([]Coercion(nil), s.coercions...)
	for i, v := range pos {
		if v == nil {
			continue
		}
		f, ok := asCoercion(v)
		if !ok {
			return &DefinitionError{Schema: s.name, Code: CodeInvalidCoercion, Key: s.keys[i]}
		}
		next[i] = f
	}
	for _, nv := range named {
		i, ok := s.index[nv.key]
		if !ok {
			return &DefinitionError{Schema: s.name, Code: CodeUnknownKey, Key: nv.key}
		}
		if nv.value == nil {
			next[i] = nil
			continue
		}
		f, ok := asCoercion(nv.value)
		if !ok {
			return &DefinitionError{Schema: s.name, Code: CodeInvalidCoercion, Key: nv.key}
		}
		next[i] = f
	}
	copy(s.coercions, next)
	return nil
}

func asCoercion(v any) (Coercion, bool) {
	switch f := v.(type) {
	case Coercion:
		return f, true
	case func(any) (any, error):
		return f, true
	default:
		return nil, false
	}
}
