package magicset

import "fmt"

// Ordering selects how a set iterates its elements.
// It is fixed when the set is constructed.
type Ordering uint8

const (
	// Unordered gives no iteration order guarantee.
	Unordered Ordering = iota
	// InsertionOrdered iterates in the order identifiers were first added.
	InsertionOrdered
)

func (o Ordering) String() string {
	switch o {
	case Unordered:
		return "unordered"
	case InsertionOrdered:
		return "insertion-ordered"
	default:
		return fmt.Sprintf("Ordering(%d)", uint8(o))
	}
}

func (o Ordering) valid() bool {
	return o == Unordered || o == InsertionOrdered
}
