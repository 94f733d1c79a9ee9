// Package dualtreebimap provides a stateful iterator over the bidirectional map.
//
// The iterator traverses pairs in key order in both directions and supports
// removing the current pair and replacing its value in place. It navigates by
// key rather than by node reference, so its own mutations never leave it
// dangling; any other structural change of the map is detected through the
// modification counter.
package dualtreebimap

import (
	"fmt"

	"github.com/qntx/bidimap/container"
)

// Position constants for iterator state.
type position byte

const (
	begin   position = iota // Before the first pair.
	between                 // Anchored at a pair (or the hole it left).
	end                     // Past the last pair.
)

// Ensure Iterator implements container.MutableIteratorWithKey at compile time.
var _ container.MutableIteratorWithKey[string, int] = (*Iterator[string, int])(nil)

// Iterator provides forward and reverse traversal over the map's pairs in key
// order, with in-place removal and value replacement.
//
// The iterator snapshots the map's modification counter at creation; every
// movement re-validates it and panics wrapping
// container.ErrConcurrentModification when the map was structurally modified
// behind the iterator's back. Mutations made through the iterator itself
// re-arm the snapshot.
type Iterator[K comparable, V comparable] struct {
	m        *Map[K, V]
	position position
	key      K    // Anchor key: the current pair, or the hole left by Delete.
	value    V    // Value snapshot of the current pair (frozen by SetValue).
	valid    bool // Whether Key/Value/Delete/SetValue may be called.
	expected int  // Modification counter snapshot.
}

// Iterator creates a new iterator positioned before the first pair.
//
// Use Next() to reach the first pair, or End() followed by Prev() for the
// last. Time complexity: O(1).
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, position: begin, expected: m.mods}
}

// Next advances the iterator to the next pair in key order.
//
// Returns true if the iterator is at a valid pair after moving. Panics
// wrapping container.ErrConcurrentModification if the map was structurally
// modified since the iterator's snapshot. Time complexity: O(log n).
func (it *Iterator[K, V]) Next() bool {
	it.check()

	switch it.position {
	case end:
		return false
	case begin:
		if node := it.m.fwd.Left(); node != nil {
			it.anchor(node.Key, node.Value)

			return true
		}
	case between:
		if node, found := it.m.fwd.Higher(it.key); found {
			it.anchor(node.Key, node.Value)

			return true
		}
	}

	it.position = end
	it.valid = false

	return false
}

// Prev moves the iterator to the previous pair in key order.
//
// Returns true if the iterator is at a valid pair after moving. Panics
// wrapping container.ErrConcurrentModification if the map was structurally
// modified since the iterator's snapshot. Time complexity: O(log n).
func (it *Iterator[K, V]) Prev() bool {
	it.check()

	switch it.position {
	case begin:
		return false
	case end:
		if node := it.m.fwd.Right(); node != nil {
			it.anchor(node.Key, node.Value)

			return true
		}
	case between:
		if node, found := it.m.fwd.Lower(it.key); found {
			it.anchor(node.Key, node.Value)

			return true
		}
	}

	it.position = begin
	it.valid = false

	return false
}

// Key returns the current pair's key.
//
// Panics wrapping container.ErrIteratorState when the iterator is not at a
// valid pair. Time complexity: O(1).
func (it *Iterator[K, V]) Key() K {
	if !it.valid {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrIteratorState))
	}

	return it.key
}

// Value returns the current pair's value.
//
// Panics wrapping container.ErrIteratorState when the iterator is not at a
// valid pair. Time complexity: O(1).
func (it *Iterator[K, V]) Value() V {
	if !it.valid {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrIteratorState))
	}

	return it.value
}

// Delete removes the current pair from the map.
//
// May be called once per movement. The anchor stays at the removed key, so the
// next movement continues from the hole by tree navigation. Panics wrapping
// container.ErrIteratorState when no current pair exists. Time complexity: O(log n).
func (it *Iterator[K, V]) Delete() {
	if !it.valid {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrIteratorState))
	}

	it.check()

	it.m.Delete(it.key)

	it.expected = it.m.mods
	it.valid = false
}

// SetValue replaces the current pair's value, routing the change through the
// parent map.
//
// A value equal to the current one (under the value comparator) is a no-op
// returning the old value. A value bound to a different key yields
// container.ErrValueChangeNotAllowed and leaves the map unchanged. Otherwise
// both indexes are updated through a fast path that skips the key-side
// re-lookup, and the iterator keeps a frozen snapshot of the new pair so
// subsequent navigation observes no stale data.
//
// Panics wrapping container.ErrIteratorState when no current pair exists.
// Time complexity: O(log n).
func (it *Iterator[K, V]) SetValue(value V) (V, error) {
	if !it.valid {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrIteratorState))
	}

	it.check()
	it.m.validate(it.key, value)

	old := it.value

	if it.m.inv.Comparator(value, old) == 0 {
		return old, nil
	}

	if boundKey, bound := it.m.inv.Get(value); bound && it.m.fwd.Comparator(boundKey, it.key) != 0 {
		var zero V

		return zero, fmt.Errorf("dualtreebimap: %w", container.ErrValueChangeNotAllowed)
	}

	// Known-state fast path: the key side needs no re-lookup.
	it.m.checkedDeleteInv(old, it.key)
	it.m.inv.Put(value, it.key)
	it.m.fwd.Replace(it.key, value)
	it.m.mods++

	it.expected = it.m.mods
	it.value = value

	return old, nil
}

// Begin resets the iterator to before the first pair.
//
// Use Next() to move to the first pair. Time complexity: O(1).
func (it *Iterator[K, V]) Begin() {
	it.position = begin
	it.valid = false
}

// End moves the iterator past the last pair.
//
// Use Prev() to move to the last pair. Time complexity: O(1).
func (it *Iterator[K, V]) End() {
	it.position = end
	it.valid = false
}

// First moves the iterator to the first pair.
//
// Returns true if the map is non-empty. Time complexity: O(log n).
func (it *Iterator[K, V]) First() bool {
	it.Begin()

	return it.Next()
}

// Last moves the iterator to the last pair.
//
// Returns true if the map is non-empty. Time complexity: O(log n).
func (it *Iterator[K, V]) Last() bool {
	it.End()

	return it.Prev()
}

// NextTo advances to the next pair satisfying the given condition.
//
// Returns true if a match is found. Time complexity: O(n) in the worst case.
func (it *Iterator[K, V]) NextTo(f func(key K, value V) bool) bool {
	for it.Next() {
		if f(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}

// PrevTo moves to the previous pair satisfying the given condition.
//
// Returns true if a match is found. Time complexity: O(n) in the worst case.
func (it *Iterator[K, V]) PrevTo(f func(key K, value V) bool) bool {
	for it.Prev() {
		if f(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}

// Reset returns the iterator to its initial position and re-arms it against
// the map's current modification counter.
func (it *Iterator[K, V]) Reset() {
	it.Begin()

	it.expected = it.m.mods
}

// anchor records the current pair and marks the iterator valid.
func (it *Iterator[K, V]) anchor(key K, value V) {
	it.key = key
	it.value = value
	it.position = between
	it.valid = true
}

// check panics when the map was structurally modified behind the iterator.
func (it *Iterator[K, V]) check() {
	if it.m.mods != it.expected {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrConcurrentModification))
	}
}
