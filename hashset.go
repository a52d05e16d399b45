package magicset

import (
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/ricpacca/magicset/set"
	"github.com/ricpacca/magicset/utils"
)

const (
	defaultCapacity       = 16
	defaultLinkedCapacity = 11
	loadFactor            = .75
)

// HashSet is a magic set backed by a map from identifier to element.
// Its Ordering is chosen at construction and never changes.
// The zero value is an empty unordered set ready to use.
type HashSet[E Item] struct {
	ordering Ordering
	store    store[E]
}

// New returns an empty unordered set.
func New[E Item]() *HashSet[E] {
	return NewWithOrdering[E](Unordered, 0)
}

// NewWithCapacity returns an empty unordered set sized for n elements.
func NewWithCapacity[E Item](n int) *HashSet[E] {
	return NewWithOrdering[E](Unordered, n)
}

// From returns an unordered set holding items. Later items replace earlier
// ones with the same identifier.
func From[E Item](items []E) (*HashSet[E], error) {
	s := NewWithCapacity[E](max(int(float64(len(items))/loadFactor)+1, defaultCapacity))
	if _, err := s.AddSlice(items); err != nil {
		return nil, err
	}
	return s, nil
}

// NewLinked returns an empty set that iterates in insertion order.
func NewLinked[E Item]() *HashSet[E] {
	return NewWithOrdering[E](InsertionOrdered, 0)
}

// NewLinkedWithCapacity returns an empty insertion ordered set sized for n
// elements.
func NewLinkedWithCapacity[E Item](n int) *HashSet[E] {
	return NewWithOrdering[E](InsertionOrdered, n)
}

// LinkedFrom returns an insertion ordered set holding items.
func LinkedFrom[E Item](items []E) (*HashSet[E], error) {
	s := NewLinkedWithCapacity[E](max(2*len(items), defaultLinkedCapacity))
	if _, err := s.AddSlice(items); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithOrdering returns an empty set with the given ordering. The capacity
// is a hint; the set grows as needed. Unknown orderings fall back to
// Unordered.
func NewWithOrdering[E Item](o Ordering, capacity int) *HashSet[E] {
	if !o.valid() {
		o = Unordered
	}

	return &HashSet[E]{
		ordering: o,
		store:    newStore[E](o, capacity),
	}
}

func (s *HashSet[E]) storage() store[E] {
	if s.store == nil {
		s.store = newStore[E](s.ordering, 0)
	}
	return s.store
}

func (s *HashSet[E]) Ordering() Ordering {
	return s.ordering
}

func validate[E Item](e E) error {
	if utils.IsZero(e) {
		return errors.Wrap(ErrInvalidArgument, "cannot add an absent element to a magic set")
	}

	if e.ID() == uuid.Nil {
		return errors.Wrapf(ErrInvalidArgument, "element %v has a nil id", e)
	}

	return nil
}

func (s *HashSet[E]) Add(e E) (added bool, err error) {
	if err := validate(e); err != nil {
		return false, err
	}

	return s.storage().put(e), nil
}

// AddSlice adds every item. Nothing is added if any item is invalid.
func (s *HashSet[E]) AddSlice(items []E) (modified bool, err error) {
	for i, e := range items {
		if err := validate(e); err != nil {
			return false, errors.Wrapf(err, "item %d", i)
		}
	}

	st := s.storage()
	for _, e := range items {
		if st.put(e) {
			modified = true
		}
	}

	return modified, nil
}

func (s *HashSet[E]) AddSet(src Set[E]) (modified bool, err error) {
	return s.AddSlice(src.Items())
}

func (s *HashSet[E]) Has(e E) bool {
	if validate(e) != nil {
		return false
	}

	stored, ok := s.storage().get(e.ID())
	return ok && stored == e
}

func (s *HashSet[E]) Remove(e E) bool {
	if !s.Has(e) {
		return false
	}

	_, ok := s.storage().remove(e.ID())
	return ok
}

func (s *HashSet[E]) RemoveIf(pred func(E) bool) (modified bool) {
	return s.storage().removeIf(pred) > 0
}

func (s *HashSet[E]) Clear() {
	s.store = newStore[E](s.ordering, 0)
}

func (s *HashSet[E]) Len() int {
	return s.storage().len()
}

func (s *HashSet[E]) IsEmpty() bool {
	return s.Len() == 0
}

// Items returns a snapshot of the elements in iteration order.
func (s *HashSet[E]) Items() []E {
	items := make([]E, 0, s.Len())
	for e := range s.All() {
		items = append(items, e)
	}
	return items
}

// All iterates the current elements. Each call starts a new iteration.
func (s *HashSet[E]) All() iter.Seq[E] {
	return s.storage().all()
}

func (s *HashSet[E]) ContainsID(id uuid.UUID) bool {
	return s.storage().has(id)
}

func (s *HashSet[E]) ContainsIDs(ids iter.Seq[uuid.UUID]) bool {
	st := s.storage()
	for id := range ids {
		if !st.has(id) {
			return false
		}
	}
	return true
}

func (s *HashSet[E]) GetFromID(id uuid.UUID) (E, bool) {
	return s.storage().get(id)
}

func (s *HashSet[E]) GetFromIDs(ids iter.Seq[uuid.UUID]) *HashSet[E] {
	st := s.storage()
	result := NewWithOrdering[E](s.ordering, 0)
	for id := range ids {
		if e, ok := st.get(id); ok {
			result.store.put(e)
		}
	}
	return result
}

func (s *HashSet[E]) RemoveFromID(id uuid.UUID) bool {
	_, ok := s.storage().remove(id)
	return ok
}

func (s *HashSet[E]) RemoveFromIDs(ids iter.Seq[uuid.UUID]) bool {
	st := s.storage()
	before := st.len()
	for id := range ids {
		st.remove(id)
	}
	return st.len() != before
}

func (s *HashSet[E]) PopFromID(id uuid.UUID) (E, bool) {
	return s.storage().remove(id)
}

func (s *HashSet[E]) PopFromIDs(ids iter.Seq[uuid.UUID]) *HashSet[E] {
	st := s.storage()
	result := NewWithOrdering[E](s.ordering, 0)
	for id := range ids {
		if e, ok := st.remove(id); ok {
			result.store.put(e)
		}
	}
	return result
}

// IDs returns the identifiers in iteration order.
func (s *HashSet[E]) IDs() *set.OrderedSet[uuid.UUID] {
	ids := set.NewOrderedSet[uuid.UUID]()
	for e := range s.All() {
		ids.Insert(e.ID())
	}
	return ids
}

// Equal reports whether both sets hold the same elements. Ordering is not
// compared. A nil other is never equal.
func (s *HashSet[E]) Equal(other Set[E]) bool {
	if other == nil {
		return false
	}
	if hs, ok := other.(*HashSet[E]); ok && hs == nil {
		return false
	}
	if s.Len() != other.Len() {
		return false
	}

	for e := range s.All() {
		if !other.Has(e) {
			return false
		}
	}
	return true
}

// Hash is independent of iteration order. Equal sets have equal hashes.
func (s *HashSet[E]) Hash() uint64 {
	var h uint64
	for e := range s.All() {
		id := e.ID()
		h += xxhash.Sum64(id[:])
	}
	return h
}

// Clone returns a shallow copy with the same ordering.
func (s *HashSet[E]) Clone() *HashSet[E] {
	return &HashSet[E]{
		ordering: s.ordering,
		store:    s.storage().clone(),
	}
}
