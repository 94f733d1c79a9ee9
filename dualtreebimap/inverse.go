// Package dualtreebimap provides the inverse projection of the map.
//
// The inverse is a live view in which keys and values trade places: every
// operation is defined purely as a call on the original map with the
// arguments swapped. The projection is cached as a singleton and its own
// inverse is the original map, so Inverse().Inverse() is an identity.
package dualtreebimap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/bidimap/container"
)

// Ensure Inverse implements the shared contract at compile time.
var _ container.OrderedBiMap[int, string] = (*Inverse[string, int])(nil)

// Inverse is a live Map[V, K] projection of a Map[K, V].
type Inverse[K comparable, V comparable] struct {
	m *Map[K, V]
}

// Inverse returns the cached inverse projection of the map.
func (m *Map[K, V]) Inverse() *Inverse[K, V] {
	if m.inverse == nil {
		m.inverse = &Inverse[K, V]{m: m}
	}

	return m.inverse
}

// Inverse returns the original map, making the double inverse an identity.
func (iv *Inverse[K, V]) Inverse() *Map[K, V] {
	return iv.m
}

// --------------------------------------------------------------------------------
// Query Operations

// Get searches the pair by value and returns its key.
func (iv *Inverse[K, V]) Get(value V) (K, bool) { return iv.m.GetKey(value) }

// GetKey searches the pair by key and returns its value.
func (iv *Inverse[K, V]) GetKey(key K) (V, bool) { return iv.m.Get(key) }

// Has reports whether the value is bound.
func (iv *Inverse[K, V]) Has(value V) bool { return iv.m.HasValue(value) }

// HasValue reports whether the key is bound.
func (iv *Inverse[K, V]) HasValue(key K) bool { return iv.m.Has(key) }

// Len returns the number of pairs.
func (iv *Inverse[K, V]) Len() int { return iv.m.Len() }

// IsEmpty reports whether the map holds no pairs.
func (iv *Inverse[K, V]) IsEmpty() bool { return iv.m.IsEmpty() }

// --------------------------------------------------------------------------------
// Mutation Operations

// Put inserts the pair (value, key) into the underlying map as (key, value).
//
// Full put semantics apply on both sides: a prior pair sharing the value is
// replaced and a prior pair sharing the key is evicted. Returns the key
// previously bound to the value, if any.
func (iv *Inverse[K, V]) Put(value V, key K) (prevKey K, replaced bool) {
	prevKey, replaced = iv.m.GetKey(value)

	iv.m.Put(key, value)

	return prevKey, replaced
}

// Delete removes the pair holding the given value and returns its key.
func (iv *Inverse[K, V]) Delete(value V) (K, bool) { return iv.m.DeleteValue(value) }

// DeleteValue removes the pair with the given key and returns its value.
func (iv *Inverse[K, V]) DeleteValue(key K) (V, bool) { return iv.m.Delete(key) }

// Clear removes all pairs from the underlying map.
func (iv *Inverse[K, V]) Clear() { iv.m.Clear() }

// --------------------------------------------------------------------------------
// Navigation Operations

// Begin returns the pair with the least value, if any.
func (iv *Inverse[K, V]) Begin() (value V, key K, found bool) {
	return iv.m.inv.Begin()
}

// End returns the pair with the greatest value, if any.
func (iv *Inverse[K, V]) End() (value V, key K, found bool) {
	return iv.m.inv.End()
}

// DeleteBegin removes and returns the pair with the least value, if any.
func (iv *Inverse[K, V]) DeleteBegin() (value V, key K, found bool) {
	value, key, found = iv.m.inv.Begin()
	if !found {
		return value, key, false
	}

	iv.m.DeleteValue(value)

	return value, key, true
}

// DeleteEnd removes and returns the pair with the greatest value, if any.
func (iv *Inverse[K, V]) DeleteEnd() (value V, key K, found bool) {
	value, key, found = iv.m.inv.End()
	if !found {
		return value, key, false
	}

	iv.m.DeleteValue(value)

	return value, key, true
}

// LowerKey returns the greatest value strictly less than the given value.
func (iv *Inverse[K, V]) LowerKey(value V) (V, bool) {
	if node, found := iv.m.inv.Lower(value); found {
		return node.Key, true
	}

	var zero V

	return zero, false
}

// FloorKey returns the greatest value less than or equal to the given value.
func (iv *Inverse[K, V]) FloorKey(value V) (V, bool) {
	if node, found := iv.m.inv.Floor(value); found {
		return node.Key, true
	}

	var zero V

	return zero, false
}

// CeilingKey returns the least value greater than or equal to the given value.
func (iv *Inverse[K, V]) CeilingKey(value V) (V, bool) {
	if node, found := iv.m.inv.Ceiling(value); found {
		return node.Key, true
	}

	var zero V

	return zero, false
}

// HigherKey returns the least value strictly greater than the given value.
func (iv *Inverse[K, V]) HigherKey(value V) (V, bool) {
	if node, found := iv.m.inv.Higher(value); found {
		return node.Key, true
	}

	var zero V

	return zero, false
}

// --------------------------------------------------------------------------------
// Bulk Views

// Keys returns all values of the underlying map in ascending value order.
func (iv *Inverse[K, V]) Keys() []V { return iv.m.Values() }

// Values returns all keys of the underlying map in ascending key order.
func (iv *Inverse[K, V]) Values() []K { return iv.m.Keys() }

// Iter returns a sequence over the (value, key) pairs in ascending value order.
func (iv *Inverse[K, V]) Iter() iter.Seq2[V, K] { return iv.m.inv.Iter() }

// RIter returns a sequence over the (value, key) pairs in descending value order.
func (iv *Inverse[K, V]) RIter() iter.Seq2[V, K] { return iv.m.inv.RIter() }

// String returns the swapped pairs in forward value order, formatted as
// {v1=k1, v2=k2, ...}.
func (iv *Inverse[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	first := true
	for v, k := range iv.Iter() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%v=%v", v, k)
	}

	sb.WriteString("}")

	return sb.String()
}
