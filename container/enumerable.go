// Package container provides a set of generic interfaces for working with container data structures.
// It defines common operations for key-value based collections, enabling consistent
// iteration, filtering, and querying capabilities across different container implementations.
package container

// EnumerableWithKey defines a generic interface for containers whose elements are key-value pairs.
//
// This interface supports iteration and querying over key-value collections, such as maps or
// custom associative data structures. It uses type parameters K and V for keys and values,
// providing type safety and flexibility.
type EnumerableWithKey[K, V any] interface {
	// Each invokes the provided function once for each element, passing the element's
	// key and value. The iteration order is implementation-dependent (ordered maps
	// iterate in comparator order).
	Each(fn func(key K, value V))

	// Any returns true if the provided function returns true for at least one key-value pair.
	// It stops iteration as soon as a match is found, optimizing for early exits.
	Any(fn func(key K, value V) bool) bool

	// All returns true if the provided function returns true for every key-value pair in the
	// container. It stops and returns false on the first failure.
	All(fn func(key K, value V) bool) bool

	// Find returns the first key and value for which the provided function returns true.
	// If no element satisfies the condition, it returns the zero values of K and V.
	Find(fn func(key K, value V) bool) (K, V)
}
