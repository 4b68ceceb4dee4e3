package keymap

// Policy controls how keys left unassigned after reconciliation are handled.
type Policy int

const (
	Strict Policy = iota // Every schema key must receive a value.
	Sparse               // Unassigned keys are filled with Absent.
)

func (p Policy) String() string {
	switch p {
	case Sparse:
		return "sparse"
	default:
		return "strict"
	}
}

// Coercion converts a raw input value into its final form during casted
// construction. Returning an error aborts the build with a *CoercionError.
type Coercion func(v any) (any, error)
