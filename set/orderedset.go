package set

import (
	"iter"

	"github.com/ricpacca/magicset/orderedmap"
)

// OrderedSet keeps items in insertion order
type OrderedSet[T comparable] struct {
	m *orderedmap.OrderedMap[T, nothing]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m: orderedmap.NewOrderedMap[T, nothing](),
	}
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	return s.m.Set(item, nothing{})
}

func (s *OrderedSet[T]) Clear() {
	s.m = orderedmap.NewOrderedMap[T, nothing]()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	_, found := s.m.HasRemove(item)
	return found
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, s.m.Len())
	for item := range s.All() {
		items = append(items, item)
	}
	return items
}

func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.m.All() {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) Has(item T) bool {
	return s.m.Has(item)
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for item := range sourceSet.All() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Len() int {
	return s.m.Len()
}
