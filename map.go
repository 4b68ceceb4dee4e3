package keymap

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is the ordered key→value mapping emitted by Map/MapCasted. Iteration
// via Oldest/Next follows schema key order, never the order values were
// supplied in.
type Map = orderedmap.OrderedMap[string, any]

func (s *Schema) emitMap(vals []any) *Map {
	om := orderedmap.New[string, any](len(s.keys))
	for i, k := range s.keys {
		om.Set(k, vals[i])
	}
	return om
}
