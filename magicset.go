// Package magicset provides sets of uniquely identified items. Besides the
// usual set operations, members can be looked up, removed and popped by
// their identifier.
//
// Sets are not safe for concurrent use.
package magicset

import (
	"iter"

	"github.com/google/uuid"
	"github.com/ricpacca/magicset/set"
)

// Item is an element that can be stored in a magic set.
// The zero value of an Item type is treated as an absent element.
type Item interface {
	comparable
	ID() uuid.UUID
}

// Set is a set of items addressable by their identifier.
type Set[E Item] interface {
	// Add stores e under its identifier and reports whether the identifier
	// was new. An element already stored under the same identifier is replaced.
	Add(e E) (added bool, err error)
	AddSlice(items []E) (modified bool, err error)
	AddSet(src Set[E]) (modified bool, err error)
	// Has reports whether e itself is stored under its identifier.
	Has(e E) bool
	Remove(e E) bool
	RemoveIf(pred func(E) bool) (modified bool)
	Clear()
	Len() int
	IsEmpty() bool
	Items() []E
	All() iter.Seq[E]

	ContainsID(id uuid.UUID) bool
	// ContainsIDs reports whether every id is present. It is true for an
	// empty sequence.
	ContainsIDs(ids iter.Seq[uuid.UUID]) bool
	GetFromID(id uuid.UUID) (E, bool)
	// GetFromIDs returns the stored elements matching ids. Missing ids are
	// skipped.
	GetFromIDs(ids iter.Seq[uuid.UUID]) *HashSet[E]
	// RemoveFromID reports whether id was present before the call.
	RemoveFromID(id uuid.UUID) bool
	// RemoveFromIDs reports whether the set changed.
	RemoveFromIDs(ids iter.Seq[uuid.UUID]) bool
	PopFromID(id uuid.UUID) (E, bool)
	PopFromIDs(ids iter.Seq[uuid.UUID]) *HashSet[E]
	IDs() *set.OrderedSet[uuid.UUID]

	Equal(other Set[E]) bool
	Hash() uint64
}

var _ Set[Unique] = (*HashSet[Unique])(nil)
