// Package container provides generic iterator interfaces for traversing container data structures.
// It includes forward and reverse iterators for key-value based collections, enabling
// flexible and type-safe iteration over various container implementations.
package container

// IteratorWithKey defines a generic, stateful iterator for containers with key-value pairs.
//
// This interface enables forward traversal of key-value collections using type
// parameters K and V for type safety.
type IteratorWithKey[K, V any] interface {
	// Next advances the iterator to the next element and returns true if a next element exists.
	// On the first call, it positions the iterator at the first element if the container is non-empty.
	// The current key and value can then be retrieved with Key() and Value().
	Next() bool

	// Value returns the current element's value without modifying the iterator's state.
	Value() V

	// Key returns the current element's key without modifying the iterator's state.
	Key() K

	// Begin resets the iterator to its initial state, positioning it before the first element.
	// Call Next() to move to the first element if it exists.
	Begin()

	// First moves the iterator directly to the first element and returns true if one exists.
	// The first element's key and value can then be retrieved with Key() and Value().
	First() bool

	// NextTo advances the iterator to the next element that satisfies the given condition,
	// returning true if such an element is found. The matching element's key and value
	// can then be retrieved with Key() and Value().
	NextTo(fn func(key K, value V) bool) bool
}

// ReverseIteratorWithKey extends IteratorWithKey with reverse traversal capabilities.
//
// This interface adds methods for backward iteration over key-value pairs, including moving
// to the last element and traversing to previous elements that satisfy specific conditions.
//
// It embeds IteratorWithKey[K, V] to inherit its forward traversal methods.
type ReverseIteratorWithKey[K, V any] interface {
	// Prev moves the iterator to the previous element and returns true if a previous element exists.
	// The previous element's key and value can then be retrieved with Key() and Value().
	Prev() bool

	// End positions the iterator past the last element (one-past-the-end).
	// Call Prev() to move to the last element if it exists.
	End()

	// Last moves the iterator directly to the last element and returns true if one exists.
	// The last element's key and value can then be retrieved with Key() and Value().
	Last() bool

	// PrevTo moves the iterator to the previous element that satisfies the given condition,
	// returning true if such an element is found. The matching element's key and value
	// can then be retrieved with Key() and Value().
	PrevTo(fn func(key K, value V) bool) bool

	IteratorWithKey[K, V]
}

// MutableIteratorWithKey extends ReverseIteratorWithKey with in-place mutation.
//
// The mutation methods operate on the element most recently returned by Next or
// Prev, routing the change back through the parent container. Implementations
// panic wrapping ErrIteratorState when no such element exists, and panic
// wrapping ErrConcurrentModification when the parent was structurally modified
// behind the iterator's back.
type MutableIteratorWithKey[K, V any] interface {
	// Delete removes the element most recently returned by Next or Prev from
	// the parent container. It may be called once per movement.
	Delete()

	// SetValue replaces the value of the element most recently returned by
	// Next or Prev. Returns the previous value, or an error if the change is
	// not permitted (for example, the value is already bound to another key).
	SetValue(value V) (V, error)

	// Reset returns the iterator to its initial position and re-arms it after
	// a concurrent-modification failure.
	Reset()

	ReverseIteratorWithKey[K, V]
}
