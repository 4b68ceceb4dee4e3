package keymap

// absentValue is the type of the Absent singleton. It is exported only
// through the Absent variable so no second instance can be constructed with a
// different identity story; comparison is by type, see IsAbsent.
type absentValue struct{}

func (absentValue) String() string { return "<absent>" }

// Absent is the distinguished marker stored for keys that received no value
// under a Sparse schema. It is distinct from nil, which remains a valid
// domain value. Coercions are never applied to Absent.
var Absent absentValue

// IsAbsent reports whether v is the Absent marker.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}
