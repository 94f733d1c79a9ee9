// Package linkedtreebimap provides the descending projection of the map.
//
// The descending view is a live view with the key ordering reversed: every
// navigation primitive delegates to the opposite primitive of the underlying
// map. The projection is cached as a singleton; Ascending() returns the
// original map.
package linkedtreebimap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/bidimap/container"
)

// Ensure Descending implements the shared contract at compile time.
var _ container.OrderedBiMap[string, int] = (*Descending[string, int])(nil)

// Descending is a live projection of the map with the key ordering reversed.
type Descending[K comparable, V comparable] struct {
	m *Map[K, V]
}

// Descending returns the cached descending projection of the map.
func (m *Map[K, V]) Descending() *Descending[K, V] {
	if m.descending == nil {
		m.descending = &Descending[K, V]{m: m}
	}

	return m.descending
}

// Ascending returns the original map.
func (d *Descending[K, V]) Ascending() *Map[K, V] {
	return d.m
}

// --------------------------------------------------------------------------------
// Query Operations

// Get searches the pair by key and returns its value.
func (d *Descending[K, V]) Get(key K) (V, bool) { return d.m.Get(key) }

// GetKey searches the pair by value and returns its key.
func (d *Descending[K, V]) GetKey(value V) (K, bool) { return d.m.GetKey(value) }

// Has reports whether the key is bound.
func (d *Descending[K, V]) Has(key K) bool { return d.m.Has(key) }

// HasValue reports whether the value is bound.
func (d *Descending[K, V]) HasValue(value V) bool { return d.m.HasValue(value) }

// Len returns the number of pairs.
func (d *Descending[K, V]) Len() int { return d.m.Len() }

// IsEmpty reports whether the map holds no pairs.
func (d *Descending[K, V]) IsEmpty() bool { return d.m.IsEmpty() }

// --------------------------------------------------------------------------------
// Mutation Operations

// Put inserts the pair into the underlying map with full put semantics.
func (d *Descending[K, V]) Put(key K, value V) (prev V, replaced bool) {
	return d.m.Put(key, value)
}

// Delete removes the pair with the given key.
func (d *Descending[K, V]) Delete(key K) (V, bool) { return d.m.Delete(key) }

// DeleteValue removes the pair holding the given value.
func (d *Descending[K, V]) DeleteValue(value V) (K, bool) { return d.m.DeleteValue(value) }

// Clear removes all pairs from the underlying map.
func (d *Descending[K, V]) Clear() { d.m.Clear() }

// --------------------------------------------------------------------------------
// Navigation Operations (reversed)

// Begin returns the pair with the greatest key of the underlying map.
func (d *Descending[K, V]) Begin() (K, V, bool) { return d.m.End() }

// End returns the pair with the least key of the underlying map.
func (d *Descending[K, V]) End() (K, V, bool) { return d.m.Begin() }

// DeleteBegin removes and returns the pair with the greatest key.
func (d *Descending[K, V]) DeleteBegin() (K, V, bool) { return d.m.DeleteEnd() }

// DeleteEnd removes and returns the pair with the least key.
func (d *Descending[K, V]) DeleteEnd() (K, V, bool) { return d.m.DeleteBegin() }

// LowerKey returns the least key strictly greater than the given key.
func (d *Descending[K, V]) LowerKey(key K) (K, bool) { return d.m.HigherKey(key) }

// FloorKey returns the least key greater than or equal to the given key.
func (d *Descending[K, V]) FloorKey(key K) (K, bool) { return d.m.CeilingKey(key) }

// CeilingKey returns the greatest key less than or equal to the given key.
func (d *Descending[K, V]) CeilingKey(key K) (K, bool) { return d.m.FloorKey(key) }

// HigherKey returns the greatest key strictly less than the given key.
func (d *Descending[K, V]) HigherKey(key K) (K, bool) { return d.m.LowerKey(key) }

// --------------------------------------------------------------------------------
// Bulk Views

// Keys returns all keys in descending key order.
func (d *Descending[K, V]) Keys() []K {
	keys := make([]K, 0, d.m.Len())
	for k := range d.m.RIter() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns all values in descending value order.
func (d *Descending[K, V]) Values() []V {
	values := make([]V, 0, d.m.Len())

	for n := d.m.greatest(valSide, d.m.root[valSide]); n != nil; n = d.m.nextSmaller(valSide, n) {
		values = append(values, n.value)
	}

	return values
}

// Iter returns a sequence over the pairs in descending key order.
func (d *Descending[K, V]) Iter() iter.Seq2[K, V] { return d.m.RIter() }

// RIter returns a sequence over the pairs in ascending key order.
func (d *Descending[K, V]) RIter() iter.Seq2[K, V] { return d.m.Iter() }

// String returns the pairs in descending key order, formatted as
// {k1=v1, k2=v2, ...}.
func (d *Descending[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	first := true
	for k, v := range d.Iter() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%v=%v", k, v)
	}

	sb.WriteString("}")

	return sb.String()
}
