package keymap

// Package keymap provides:
//
// - Ordered, immutable key schemas declared once and reused (New/Define)
// - Validated construction of ordered mappings and fixed-shape records from
//   positional plus named values (Map/Record and their Casted variants)
// - Strict and Sparse policies (exactly-these-keys vs Absent-filled gaps)
// - Per-key value coercion via the codec package or custom Coercion funcs
// - A typed error model (DefinitionError, KeyError, TooManyValuesError,
//   CoercionError) that enumerates every offending key in one failure
//
// Design policy:
// - Keep the public API in the root package; stock coercions live under codec/.
// - Schemas are the only long-lived values and are read-only after
//   SetCoercions; build calls share no state and allocate their own output.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	order := keymap.MustNew("Order", "index cost due_on")
//	_ = order.SetCoercions(keymap.Pos(codec.Int, codec.Float, codec.RFC3339))
//
//	r, err := order.RecordCasted(keymap.Pos("342", "32.50"), keymap.Key("due_on", "2017-09-01T00:00:00Z"))
//	m, err := order.Map(keymap.Pos(342, 32.50, due))
