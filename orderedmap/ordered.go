// Package orderedmap implements a map that remembers insertion order.
package orderedmap

import (
	"iter"

	ordered "github.com/wk8/go-ordered-map/v2"
)

type (
	OrderedMap[K comparable, V any] struct {
		om *ordered.OrderedMap[K, V]
	}

	ForEachFn[K comparable, V any]   func(key K, value V, order int)
	PredicateFn[K comparable, V any] func(key K, value V) bool
)

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return NewOrderedMapWithCapacity[K, V](0)
}

// NewOrderedMapWithCapacity preallocates the index for n keys.
// The map still grows past n.
func NewOrderedMapWithCapacity[K comparable, V any](n int) *OrderedMap[K, V] {
	if n < 0 {
		n = 0
	}

	return &OrderedMap[K, V]{
		om: ordered.New[K, V](n),
	}
}

// Set is idempotent and returns true if the key was not present.
// Replacing the value of an existing key keeps its position.
func (om *OrderedMap[K, V]) Set(key K, value V) (added bool) {
	_, present := om.om.Set(key, value)
	return !present
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	return om.om.Get(key)
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.om.Get(key)
	return found
}

func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	return om.om.Delete(key)
}

// RemoveIf drops every pair matching pred and returns how many were removed.
func (om *OrderedMap[K, V]) RemoveIf(pred PredicateFn[K, V]) (removed int) {
	for pair := om.om.Oldest(); pair != nil; {
		next := pair.Next()
		if pred(pair.Key, pair.Value) {
			om.om.Delete(pair.Key)
			removed++
		}
		pair = next
	}

	return removed
}

func (om *OrderedMap[K, V]) Len() int {
	return om.om.Len()
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	for key, value := range om.All() {
		f(key, value, order)
		order++
	}
}

// All yields pairs in insertion order. Removing the current key while
// ranging is allowed.
func (om *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := om.om.Oldest(); pair != nil; {
			next := pair.Next()
			if !yield(pair.Key, pair.Value) {
				return
			}
			pair = next
		}
	}
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	result := NewOrderedMapWithCapacity[K, V](om.Len())
	om.ForEach(func(key K, value V, _ int) {
		result.Set(key, value)
	})

	return result
}
