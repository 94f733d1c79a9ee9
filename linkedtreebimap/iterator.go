// Package linkedtreebimap provides a stateful iterator over the bidirectional map.
//
// The iterator walks the key tree's nodes directly. After removing the
// current pair it falls back to navigating by the removed key, so its own
// mutations never leave it dangling; any other structural change of the map
// is detected through the modification counter.
package linkedtreebimap

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
	m         *Map[K, V]
	node      *node[K, V] // Current node; nil at the ends or after Delete.
	position  position
	anchorKey K    // Key of the current pair, kept across Delete.
	value     V    // Value snapshot of the current pair (frozen by SetValue).
	valid     bool // Whether Key/Value/Delete/SetValue may be called.
	expected  int  // Modification counter snapshot.
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

	var next *node[K, V]

	switch it.position {
	case end:
		return false
	case begin:
		next = it.m.least(keySide, it.m.root[keySide])
	case between:
		if it.node != nil {
			next = it.m.nextGreater(keySide, it.node)
		} else {
			// The current node was removed; continue from the hole.
			exact, _, above := it.m.seekKey(it.anchorKey)
			if exact != nil {
				above = it.m.nextGreater(keySide, exact)
			}

			next = above
		}
	}

	if next == nil {
		it.node = nil
		it.position = end
		it.valid = false

		return false
	}

	it.anchor(next)

	return true
}

// Prev moves the iterator to the previous pair in key order.
//
// Returns true if the iterator is at a valid pair after moving. Panics
// wrapping container.ErrConcurrentModification if the map was structurally
// modified since the iterator's snapshot. Time complexity: O(log n).
func (it *Iterator[K, V]) Prev() bool {
	it.check()

	var prev *node[K, V]

	switch it.position {
	case begin:
		return false
	case end:
		prev = it.m.greatest(keySide, it.m.root[keySide])
	case between:
		if it.node != nil {
			prev = it.m.nextSmaller(keySide, it.node)
		} else {
			exact, below, _ := it.m.seekKey(it.anchorKey)
			if exact != nil {
				below = it.m.nextSmaller(keySide, exact)
			}

			prev = below
		}
	}

	if prev == nil {
		it.node = nil
		it.position = begin
		it.valid = false

		return false
	}

	it.anchor(prev)

	return true
}

// Key returns the current pair's key.
//
// Panics wrapping container.ErrIteratorState when the iterator is not at a
// valid pair. Time complexity: O(1).
func (it *Iterator[K, V]) Key() K {
	if !it.valid {
		panic(fmt.Errorf("linkedtreebimap: %w", container.ErrIteratorState))
	}

	return it.anchorKey
}

// Value returns the current pair's value.
//
// Panics wrapping container.ErrIteratorState when the iterator is not at a
// valid pair. Time complexity: O(1).
func (it *Iterator[K, V]) Value() V {
	if !it.valid {
		panic(fmt.Errorf("linkedtreebimap: %w", container.ErrIteratorState))
	}

	return it.value
}

// Delete removes the current pair from the map.
//
// May be called once per movement. The anchor stays at the removed key, so
// the next movement continues from the hole by tree navigation. Panics
// wrapping container.ErrIteratorState when no current pair exists.
// Time complexity: O(log n).
func (it *Iterator[K, V]) Delete() {
	if !it.valid {
		panic(fmt.Errorf("linkedtreebimap: %w", container.ErrIteratorState))
	}

	it.check()

	it.m.removeNode(it.node)

	it.expected = it.m.mods
	it.node = nil
	it.valid = false
}

// SetValue replaces the current pair's value, routing the change through the
// parent map.
//
// A value equal to the current one (under the value comparator) is a no-op
// returning the old value. A value bound to a different pair yields
// container.ErrValueChangeNotAllowed and leaves the map unchanged. Otherwise
// the node is rethreaded in the value tree only; the key tree is untouched,
// and the iterator keeps a frozen snapshot of the new pair.
//
// Panics wrapping container.ErrIteratorState when no current pair exists.
// Time complexity: O(log n).
func (it *Iterator[K, V]) SetValue(value V) (V, error) {
	if !it.valid {
		panic(fmt.Errorf("linkedtreebimap: %w", container.ErrIteratorState))
	}

	it.check()
	it.m.validate(it.anchorKey, value)

	old := it.value

	if it.m.vcmp(value, old) == 0 {
		return old, nil
	}

	if holder := it.m.lookupValue(value); holder != nil && holder != it.node {
		var zero V

		return zero, fmt.Errorf("linkedtreebimap: %w", container.ErrValueChangeNotAllowed)
	}

	it.m.deleteNode(valSide, it.node)
	it.node.value = value
	it.m.insertValueNode(it.node)
	it.m.mods++

	it.expected = it.m.mods
	it.value = value

	return old, nil
}

// Begin resets the iterator to before the first pair.
//
// Use Next() to move to the first pair. Time complexity: O(1).
func (it *Iterator[K, V]) Begin() {
	it.node = nil
	it.position = begin
	it.valid = false
}

// End moves the iterator past the last pair.
//
// Use Prev() to move to the last pair. Time complexity: O(1).
func (it *Iterator[K, V]) End() {
	it.node = nil
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

// anchor records the current node and marks the iterator valid.
func (it *Iterator[K, V]) anchor(n *node[K, V]) {
	it.node = n
	it.anchorKey = n.key
	it.value = n.value
	it.position = between
	it.valid = true
}

// check panics when the map was structurally modified behind the iterator.
func (it *Iterator[K, V]) check() {
	if it.m.mods != it.expected {
		panic(fmt.Errorf("linkedtreebimap: %w", container.ErrConcurrentModification))
	}
}
