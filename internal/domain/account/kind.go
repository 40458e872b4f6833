package account

// Kind defines the supported account kinds.
type Kind string

const (
	KindChecking Kind = "CHECKING"
	KindSavings  Kind = "SAVINGS"
)

// Valid reports whether k is one of the recognized account kinds.
func (k Kind) Valid() bool {
	return k == KindChecking || k == KindSavings
}
