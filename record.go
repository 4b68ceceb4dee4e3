package keymap

import (
	"fmt"
	"reflect"
	"strings"
)

// Record is the fixed-shape output of Record/RecordCasted: one value per
// schema key, ordered by the schema, immutable. Field access goes through the
// schema's name→position table rather than generated accessors. The zero
// Record has no keys.
type Record struct {
	schema *Schema
	values []any
}

// Name returns the owning schema's name.
func (r Record) Name() string {
	if r.schema == nil {
		return ""
	}
	return r.schema.name
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.values) }

// Keys returns the field names in schema order.
func (r Record) Keys() []string {
	if r.schema == nil {
		return nil
	}
	return r.schema.Keys()
}

// Values returns a copy of the field values in schema order. Feeding them
// back positionally rebuilds an identical record, which makes
//
//	s.Record(keymap.Pos(r.Values()...), keymap.Key("k", v))
//
// the idiom for a modified copy.
func (r Record) Values() []any {
	return append([]any(nil), r.values...)
}

// Get returns the value for key and whether key is a field.
func (r Record) Get(key string) (any, bool) {
	if r.schema == nil {
		return nil, false
	}
	i, ok := r.schema.index[key]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// At returns the value at position i in schema order.
func (r Record) At(i int) any { return r.values[i] }

// Equal reports structural equality: same field names in the same order and
// deeply equal values. Schema identity and name do not participate.
func (r Record) Equal(o Record) bool {
	if len(r.values) != len(o.values) {
		return false
	}
	if r.schema != o.schema {
		if r.schema == nil || o.schema == nil {
			return r.schema == o.schema
		}
		for i, k := range r.schema.keys {
			if o.schema.keys[i] != k {
				return false
			}
		}
	}
	for i := range r.values {
		if !reflect.DeepEqual(r.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

// String renders the record as Name(key=value, ...) in schema order.
func (r Record) String() string {
	b := &strings.Builder{}
	b.WriteString(r.Name())
	b.WriteByte('(')
	if r.schema != nil {
		for i, k := range r.schema.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", k, r.values[i])
		}
	}
	b.WriteByte(')')
	return b.String()
}
