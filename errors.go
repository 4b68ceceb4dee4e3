package keymap

import (
	"fmt"
	"strings"

	"github.com/reoring/keymap/i18n"
)

// Error codes carried by *DefinitionError (exported consts for error
// inspection without string matching on messages).
const (
	CodeEmptySchema     = "empty_schema"
	CodeDuplicateKey    = "duplicate_key"
	CodeReservedKey     = "reserved_key"
	CodeInvalidKeyName  = "invalid_key_name"
	CodeUnknownKey      = "unknown_key"
	CodeTooManyValues   = "too_many_values"
	CodeInvalidCoercion = "invalid_coercion"
)

// DefinitionError reports an invalid schema declaration or an invalid
// coercion attachment. The declaration is unusable; the caller must fix it.
type DefinitionError struct {
	Schema string // Schema name, may be empty when the name itself is at fault.
	Code   string // One of the Code* constants above.
	Key    string // Offending key, when one applies.
}

func (e *DefinitionError) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "keymap: schema %q: %s", e.Schema, i18n.T(e.Code, nil))
	if e.Key != "" {
		fmt.Fprintf(b, " %q", e.Key)
	}
	return b.String()
}

// KeyError reports invalid and/or missing keys from a build call. Both
// categories are collected before failing so one failure is enough to fix
// the call: Missing holds required keys left unassigned (Strict schemas
// only), Invalid holds supplied names that are not schema members.
type KeyError struct {
	Schema   string
	Required []string // The schema's full key set, in schema order.
	Missing  []string
	Invalid  []string
}

func (e *KeyError) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "keymap: %s %s (%s)", e.Schema, i18n.T("requires_keys", nil), strings.Join(e.Required, ", "))
	if len(e.Missing) > 0 {
		fmt.Fprintf(b, "; %s {%s}", i18n.T("missing_keys", nil), strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		fmt.Fprintf(b, "; %s {%s}", i18n.T("invalid_keys", nil), strings.Join(e.Invalid, ", "))
	}
	return b.String()
}

// TooManyValuesError reports more positional values than schema keys. It is
// raised under both policies: no key exists to receive the overflow.
type TooManyValuesError struct {
	Schema string
	Keys   int // Number of schema keys.
	Values int // Number of positional values supplied.
}

func (e *TooManyValuesError) Error() string {
	return fmt.Sprintf("keymap: %s: %s: got %d for %d keys",
		e.Schema, i18n.T("too_many_values", nil), e.Values, e.Keys)
}

// CoercionError reports a coercion function failing for a key's final value.
// It wraps the underlying error.
type CoercionError struct {
	Schema string
	Key    string
	Value  any
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("keymap: %s: %s for key %q (value %v): %v",
		e.Schema, i18n.T("coercion_failed", nil), e.Key, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }
