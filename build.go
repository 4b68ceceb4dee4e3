package keymap

// Map reconciles positional and named values against the schema and returns
// an ordered mapping. No coercions are applied.
func (s *Schema) Map(args ...Arg) (*Map, error) {
	vals, err := s.resolve(args)
	if err != nil {
		return nil, err
	}
	return s.emitMap(vals), nil
}

// MapCasted is Map with the schema's coercions applied to each key's final
// value. Keys that resolved to Absent are passed through unchanged.
func (s *Schema) MapCasted(args ...Arg) (*Map, error) {
	vals, err := s.resolve(args)
	if err != nil {
		return nil, err
	}
	if err := s.applyCoercions(vals); err != nil {
		return nil, err
	}
	return s.emitMap(vals), nil
}

// Record reconciles positional and named values against the schema and
// returns a fixed-shape record. No coercions are applied.
func (s *Schema) Record(args ...Arg) (Record, error) {
	vals, err := s.resolve(args)
	if err != nil {
		return Record{}, err
	}
	return Record{schema: s, values: vals}, nil
}

// RecordCasted is Record with the schema's coercions applied to each key's
// final value. Keys that resolved to Absent are passed through unchanged.
func (s *Schema) RecordCasted(args ...Arg) (Record, error) {
	vals, err := s.resolve(args)
	if err != nil {
		return Record{}, err
	}
	if err := s.applyCoercions(vals); err != nil {
		return Record{}, err
	}
	return Record{schema: s, values: vals}, nil
}

// resolve reconciles a call into one value per schema key:
// positional values zip to keys in declaration order, named values overlay
// (override) them, then the policy decides what happens to unassigned keys.
// Invalid and missing keys are collected in full before failing so a single
// *KeyError carries both categories.
func (s *Schema) resolve(args []Arg) ([]any, error) {
	pos, named := gather(args)
	if len(pos) > len(s.keys) {
		return nil, &TooManyValuesError{Schema: s.name, Keys: len(s.keys), Values: len(pos)}
	}
	vals := make([]any, len(s.keys))
	assigned := make([]bool, len(s.keys))
	for i, v := range pos {
		vals[i] = v
		assigned[i] = true
	}
	var invalid []string
	for _, nv := range named {
		i, ok := s.index[nv.key]
		if !ok {
			invalid = appendUnique(invalid, nv.key)
			continue
		}
		vals[i] = nv.value
		assigned[i] = true
	}
	var missing []string
	for i, ok := range assigned {
		if ok {
			continue
		}
		if s.policy == Sparse {
			vals[i] = Absent
			continue
		}
		missing = append(missing, s.keys[i])
	}
	if len(invalid) > 0 || len(missing) > 0 {
		return nil, &KeyError{Schema: s.name, Required: s.Keys(), Missing: missing, Invalid: invalid}
	}
	return vals, nil
}

func (s *Schema) applyCoercions(vals []any) error {
	for i, f := range s.coercions {
		if f == nil || IsAbsent(vals[i]) {
			continue
		}
		v, err := f(vals[i])
		if err != nil {
			return &CoercionError{Schema: s.name, Key: s.keys[i], Value: vals[i], Err: err}
		}
		vals[i] = v
	}
	return nil
}

func appendUnique(dst []string, k string) []string {
	for _, have := range dst {
		if have == k {
			return dst
		}
	}
	return append(dst, k)
}
