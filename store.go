package magicset

import (
	"iter"

	"github.com/google/uuid"
	"github.com/ricpacca/magicset/keyvalue"
	"github.com/ricpacca/magicset/orderedmap"
	"golang.org/x/exp/maps"
)

// store owns the elements of a set, keyed by identifier.
type store[E Item] interface {
	put(e E) (added bool)
	get(id uuid.UUID) (E, bool)
	has(id uuid.UUID) bool
	remove(id uuid.UUID) (E, bool)
	removeIf(pred func(E) bool) (removed int)
	len() int
	all() iter.Seq[E]
	clone() store[E]
}

func newStore[E Item](o Ordering, capacity int) store[E] {
	if capacity < 0 {
		capacity = 0
	}

	if o == InsertionOrdered {
		return &linkedStore[E]{om: orderedmap.NewOrderedMapWithCapacity[uuid.UUID, E](capacity)}
	}

	return &hashStore[E]{m: make(map[uuid.UUID]E, capacity)}
}

type hashStore[E Item] struct {
	m map[uuid.UUID]E
}

func (hs *hashStore[E]) put(e E) bool {
	id := e.ID()
	_, found := hs.m[id]
	hs.m[id] = e
	return !found
}

func (hs *hashStore[E]) get(id uuid.UUID) (E, bool) {
	e, ok := hs.m[id]
	return e, ok
}

func (hs *hashStore[E]) has(id uuid.UUID) bool {
	_, ok := hs.m[id]
	return ok
}

func (hs *hashStore[E]) remove(id uuid.UUID) (E, bool) {
	e, ok := hs.m[id]
	if ok {
		delete(hs.m, id)
	}
	return e, ok
}

func (hs *hashStore[E]) removeIf(pred func(E) bool) int {
	before := len(hs.m)
	hs.m = keyvalue.Filter(hs.m, func(_ uuid.UUID, e E) bool {
		return !pred(e)
	})
	return before - len(hs.m)
}

func (hs *hashStore[E]) len() int {
	return len(hs.m)
}

func (hs *hashStore[E]) all() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range hs.m {
			if !yield(e) {
				return
			}
		}
	}
}

func (hs *hashStore[E]) clone() store[E] {
	return &hashStore[E]{m: maps.Clone(hs.m)}
}

type linkedStore[E Item] struct {
	om *orderedmap.OrderedMap[uuid.UUID, E]
}

func (ls *linkedStore[E]) put(e E) bool {
	return ls.om.Set(e.ID(), e)
}

func (ls *linkedStore[E]) get(id uuid.UUID) (E, bool) {
	return ls.om.HasGet(id)
}

func (ls *linkedStore[E]) has(id uuid.UUID) bool {
	return ls.om.Has(id)
}

func (ls *linkedStore[E]) remove(id uuid.UUID) (E, bool) {
	return ls.om.HasRemove(id)
}

func (ls *linkedStore[E]) removeIf(pred func(E) bool) int {
	return ls.om.RemoveIf(func(_ uuid.UUID, e E) bool {
		return pred(e)
	})
}

func (ls *linkedStore[E]) len() int {
	return ls.om.Len()
}

func (ls *linkedStore[E]) all() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range ls.om.All() {
			if !yield(e) {
				return
			}
		}
	}
}

func (ls *linkedStore[E]) clone() store[E] {
	return &linkedStore[E]{om: ls.om.Clone()}
}
