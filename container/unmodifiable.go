// Package container provides an unmodifiable projection of an ordered
// bidirectional map.
package container

import (
	"fmt"
	"iter"
)

// Ensure Unmodifiable implements OrderedBiMap at compile time.
var _ OrderedBiMap[string, int] = (*Unmodifiable[string, int])(nil)

// Unmodifiable is a read-only wrapper around an OrderedBiMap.
//
// Query and navigation operations delegate to the wrapped map; every mutator
// panics wrapping ErrUnmodifiable. The wrapper is a live view: changes made
// through the underlying map remain visible.
type Unmodifiable[K comparable, V comparable] struct {
	m OrderedBiMap[K, V]
}

// NewUnmodifiable wraps the given map in a read-only projection.
func NewUnmodifiable[K comparable, V comparable](m OrderedBiMap[K, V]) *Unmodifiable[K, V] {
	return &Unmodifiable[K, V]{m: m}
}

// --------------------------------------------------------------------------------
// Query Operations

// Get retrieves the value bound to the given key.
func (u *Unmodifiable[K, V]) Get(key K) (V, bool) { return u.m.Get(key) }

// GetKey retrieves the key bound to the given value.
func (u *Unmodifiable[K, V]) GetKey(value V) (K, bool) { return u.m.GetKey(value) }

// Has reports whether the key is bound.
func (u *Unmodifiable[K, V]) Has(key K) bool { return u.m.Has(key) }

// HasValue reports whether the value is bound.
func (u *Unmodifiable[K, V]) HasValue(value V) bool { return u.m.HasValue(value) }

// Len returns the number of pairs.
func (u *Unmodifiable[K, V]) Len() int { return u.m.Len() }

// IsEmpty reports whether the map holds no pairs.
func (u *Unmodifiable[K, V]) IsEmpty() bool { return u.m.IsEmpty() }

// Keys returns all keys in ascending key order.
func (u *Unmodifiable[K, V]) Keys() []K { return u.m.Keys() }

// Values returns all values in the order the wrapped map's Values uses.
func (u *Unmodifiable[K, V]) Values() []V { return u.m.Values() }

// Begin returns the pair with the least key.
func (u *Unmodifiable[K, V]) Begin() (K, V, bool) { return u.m.Begin() }

// End returns the pair with the greatest key.
func (u *Unmodifiable[K, V]) End() (K, V, bool) { return u.m.End() }

// LowerKey returns the greatest key strictly less than the given key.
func (u *Unmodifiable[K, V]) LowerKey(key K) (K, bool) { return u.m.LowerKey(key) }

// FloorKey returns the greatest key less than or equal to the given key.
func (u *Unmodifiable[K, V]) FloorKey(key K) (K, bool) { return u.m.FloorKey(key) }

// CeilingKey returns the least key greater than or equal to the given key.
func (u *Unmodifiable[K, V]) CeilingKey(key K) (K, bool) { return u.m.CeilingKey(key) }

// HigherKey returns the least key strictly greater than the given key.
func (u *Unmodifiable[K, V]) HigherKey(key K) (K, bool) { return u.m.HigherKey(key) }

// Iter returns a sequence over the pairs in ascending key order.
func (u *Unmodifiable[K, V]) Iter() iter.Seq2[K, V] { return u.m.Iter() }

// RIter returns a sequence over the pairs in descending key order.
func (u *Unmodifiable[K, V]) RIter() iter.Seq2[K, V] { return u.m.RIter() }

// String returns the string representation of the wrapped map.
func (u *Unmodifiable[K, V]) String() string { return u.m.String() }

// --------------------------------------------------------------------------------
// Rejected Mutators

// Delete panics wrapping ErrUnmodifiable.
func (u *Unmodifiable[K, V]) Delete(key K) (V, bool) {
	panic(fmt.Errorf("container: %w", ErrUnmodifiable))
}

// DeleteValue panics wrapping ErrUnmodifiable.
func (u *Unmodifiable[K, V]) DeleteValue(value V) (K, bool) {
	panic(fmt.Errorf("container: %w", ErrUnmodifiable))
}

// DeleteBegin panics wrapping ErrUnmodifiable.
func (u *Unmodifiable[K, V]) DeleteBegin() (K, V, bool) {
	panic(fmt.Errorf("container: %w", ErrUnmodifiable))
}

// DeleteEnd panics wrapping ErrUnmodifiable.
func (u *Unmodifiable[K, V]) DeleteEnd() (K, V, bool) {
	panic(fmt.Errorf("container: %w", ErrUnmodifiable))
}

// Clear panics wrapping ErrUnmodifiable.
func (u *Unmodifiable[K, V]) Clear() {
	panic(fmt.Errorf("container: %w", ErrUnmodifiable))
}
