package keymap

// Builder declares a schema key by key. Key order is declaration order.
//
//	s, err := keymap.Define("Order").
//		Key("index").Cast(codec.Int).
//		Key("cost").Cast(codec.Float).
//		Key("due_on").
//		Build()
type Builder struct {
	name      string
	keys      []string
	coercions map[string]Coercion
	policy    Policy
}

// KeyStep scopes chained calls to the most recently declared key.
type KeyStep struct {
	b    *Builder
	name string
}

// Define starts a schema declaration with safe defaults (Strict policy).
func Define(name string) *Builder {
	return &Builder{name: name, coercions: map[string]Coercion{}}
}

// Key declares the next key in order.
func (b *Builder) Key(name string) *KeyStep {
	b.keys = append(b.keys, name)
	return &KeyStep{b: b, name: name}
}

// Sparse switches the schema to the Sparse policy.
func (b *Builder) Sparse() *Builder {
	b.policy = Sparse
	return b
}

// Build validates the declaration and returns the schema.
func (b *Builder) Build() (*Schema, error) {
	s, err := newSchema(b.name, append([]string(nil), b.keys...), b.policy)
	if err != nil {
		return nil, err
	}
	for k, f := range b.coercions {
		s.coercions[s.index[k]] = f
	}
	return s, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Cast attaches a coercion to the current key and returns the builder.
func (k *KeyStep) Cast(f Coercion) *Builder {
	k.b.coercions[k.name] = f
	return k.b
}

// Key declares the next key, ending this step without a coercion.
func (k *KeyStep) Key(name string) *KeyStep { return k.b.Key(name) }

// Sparse forwards to the builder.
func (k *KeyStep) Sparse() *Builder { return k.b.Sparse() }

// Build forwards to the builder.
func (k *KeyStep) Build() (*Schema, error) { return k.b.Build() }

// MustBuild forwards to the builder.
func (k *KeyStep) MustBuild() *Schema { return k.b.MustBuild() }
