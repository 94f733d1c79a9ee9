// Package dualtreebimap implements a bidirectional map backed by two red-black trees.
//
// This structure guarantees that the map will be in both ascending key and value order.
//
// A bidirectional map is an associative data structure in which the (key,value) pairs
// form a one-to-one correspondence. Thus the binary relation is functional in each
// direction: a value can also act as a key to its key. A pair (a,b) provides a unique
// coupling between 'a' and 'b' so that 'b' can be found when 'a' is used as a key and
// 'a' can be found when 'b' is used as a key.
//
// Putting a pair whose key is already bound replaces that key's pair; putting a pair
// whose value is already bound evicts the previous holder of the value. Both indexes
// are kept in lockstep through checked helpers that verify the pre-existing
// association before every update.
//
// Structure is not thread safe.
//
// Reference: https://en.wikipedia.org/wiki/Bidirectional_map
package dualtreebimap

import (
	"fmt"
	"hash/fnv"
	"iter"
	"strings"

	"github.com/qntx/bidimap/cmp"
	"github.com/qntx/bidimap/container"
	"github.com/qntx/bidimap/rbtree"
	"github.com/qntx/bidimap/util"
)

// Ensure Map implements the shared contracts at compile time.
var (
	_ container.OrderedBiMap[string, int]      = (*Map[string, int])(nil)
	_ container.EnumerableWithKey[string, int] = (*Map[string, int])(nil)
)

// Map holds the pairs in two red-black trees kept in lockstep: a forward tree
// ordered by key and an inverse tree ordered by value.
type Map[K comparable, V comparable] struct {
	fwd  *rbtree.Tree[K, V]
	inv  *rbtree.Tree[V, K]
	mods int // Structural modification counter, observed by iterators.

	inverse    *Inverse[K, V]    // Cached inverse projection.
	descending *Descending[K, V] // Cached descending projection.
}

// --------------------------------------------------------------------------------
// Constructors

// New instantiates a bidirectional map with natural ordering on keys and values.
func New[K, V cmp.Ordered]() *Map[K, V] {
	return NewWith[K, V](cmp.Compare[K], cmp.Compare[V])
}

// NewWith instantiates a bidirectional map with custom comparators.
func NewWith[K, V comparable](keyComparator cmp.Comparator[K], valueComparator cmp.Comparator[V]) *Map[K, V] {
	return &Map[K, V]{
		fwd: rbtree.NewWith[K, V](keyComparator),
		inv: rbtree.NewWith[V, K](valueComparator),
	}
}

// NewFrom instantiates a bidirectional map with natural ordering, populated from
// the given Go map. Pairs sharing a value collapse to a single pair; which one
// survives follows Go's map iteration order.
func NewFrom[K, V cmp.Ordered](elems map[K]V) *Map[K, V] {
	m := New[K, V]()
	for k, v := range elems {
		m.Put(k, v)
	}

	return m
}

// NewFromSeq instantiates a bidirectional map with natural ordering, populated
// by sequential puts from the given sequence in its order.
func NewFromSeq[K, V cmp.Ordered](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.PutAll(seq)

	return m
}

// --------------------------------------------------------------------------------
// Query Operations

// Get searches the pair by key and returns its value.
//
// Second return parameter is true if the key was found. Time complexity: O(log n).
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	return m.fwd.Get(key)
}

// GetKey searches the pair by value and returns its key.
//
// Second return parameter is true if the value was found. Time complexity: O(log n).
func (m *Map[K, V]) GetKey(value V) (key K, found bool) {
	return m.inv.Get(value)
}

// Has reports whether the key is bound. Time complexity: O(log n).
func (m *Map[K, V]) Has(key K) bool {
	_, found := m.fwd.Get(key)

	return found
}

// HasValue reports whether the value is bound. Time complexity: O(log n).
func (m *Map[K, V]) HasValue(value V) bool {
	_, found := m.inv.Get(value)

	return found
}

// Len returns the number of pairs in the map. Time complexity: O(1).
func (m *Map[K, V]) Len() int {
	return m.fwd.Len()
}

// IsEmpty reports whether the map contains no pairs. Time complexity: O(1).
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// --------------------------------------------------------------------------------
// Mutation Operations

// Put inserts the pair into the map.
//
// After the call (key, value) is present: any prior pair (key, v') is replaced,
// and any prior pair (k', value) with a different key is evicted so the value
// stays unique. Returns the value previously bound to the key, if any. Putting
// a pair identical (under the value comparator) to the stored one is a no-op
// that performs no structural change.
//
// Panics wrapping container.ErrNilArgument on nil keys or values.
// Time complexity: O(log n).
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced bool) {
	m.validate(key, value)

	prev, replaced = m.fwd.Get(key)
	if replaced && m.inv.Comparator(prev, value) == 0 {
		// Identity replace, short-circuit before any structural change.
		return prev, true
	}

	if replaced {
		m.checkedDeleteInv(prev, key)
	}

	if evictedKey, bound := m.inv.Get(value); bound {
		m.checkedDeleteFwd(evictedKey, value)
	}

	m.fwd.Put(key, value)
	m.inv.Put(value, key)
	m.mods++

	return prev, replaced
}

// PutIfAbsent inserts the pair only if the key is unbound.
//
// When the key is bound the call is a no-op returning the current value. When
// the key is unbound the call follows full Put semantics, evicting any other
// holder of the value. Returns the value bound to the key after the call and
// whether an insertion happened. Time complexity: O(log n).
func (m *Map[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	m.validate(key, value)

	if cur, found := m.fwd.Get(key); found {
		return cur, false
	}

	m.Put(key, value)

	return value, true
}

// PutAll inserts every pair of the sequence with sequential puts in its order.
func (m *Map[K, V]) PutAll(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Put(k, v)
	}
}

// Replace updates the value for the key only when the key is bound.
//
// The new value follows full Put semantics, evicting any other holder.
// Returns the previous value and whether a replacement happened.
// Time complexity: O(log n).
func (m *Map[K, V]) Replace(key K, value V) (old V, replaced bool) {
	m.validate(key, value)

	if _, found := m.fwd.Get(key); !found {
		return old, false
	}

	return m.Put(key, value)
}

// ReplaceIf updates the value for the key only when the current value equals
// old under the value comparator. Time complexity: O(log n).
func (m *Map[K, V]) ReplaceIf(key K, old, value V) bool {
	m.validate(key, value)

	cur, found := m.fwd.Get(key)
	if !found || m.inv.Comparator(cur, old) != 0 {
		return false
	}

	m.Put(key, value)

	return true
}

// Delete removes the pair with the given key.
//
// Returns the removed value and whether the key was found. Time complexity: O(log n).
func (m *Map[K, V]) Delete(key K) (value V, found bool) {
	value, found = m.fwd.Get(key)
	if !found {
		return value, false
	}

	m.checkedDeleteInv(value, key)
	m.fwd.Delete(key)
	m.mods++

	return value, true
}

// DeleteValue removes the pair holding the given value.
//
// Returns the removed pair's key and whether the value was found. Time complexity: O(log n).
func (m *Map[K, V]) DeleteValue(value V) (key K, found bool) {
	key, found = m.inv.Get(value)
	if !found {
		return key, false
	}

	m.checkedDeleteFwd(key, value)
	m.inv.Delete(value)
	m.mods++

	return key, true
}

// DeleteIf removes the pair only when the key is currently bound to the given
// value under the value comparator. Time complexity: O(log n).
func (m *Map[K, V]) DeleteIf(key K, value V) bool {
	cur, found := m.fwd.Get(key)
	if !found || m.inv.Comparator(cur, value) != 0 {
		return false
	}

	m.Delete(key)

	return true
}

// Clear removes all pairs from the map.
func (m *Map[K, V]) Clear() {
	m.fwd.Clear()
	m.inv.Clear()
	m.mods++
}

// --------------------------------------------------------------------------------
// Compute Operations

// Compute applies the remapping function to the pair for the key.
//
// The function receives the current value (zero if absent) and whether the key
// is bound; it returns the new value and whether the pair should be kept. A
// kept value is stored with full Put semantics; a dropped pair is removed.
//
// The function must not mutate the map: a structural change during its
// invocation panics wrapping container.ErrConcurrentModification.
func (m *Map[K, V]) Compute(key K, remap func(value V, found bool) (V, bool)) (V, bool) {
	old, found := m.fwd.Get(key)

	newValue, keep := m.guarded(func() (V, bool) { return remap(old, found) })
	if !keep {
		if found {
			m.Delete(key)
		}

		var zero V

		return zero, false
	}

	m.Put(key, newValue)

	return newValue, true
}

// ComputeIfAbsent stores the computed value only when the key is unbound.
//
// Returns the value bound to the key after the call. The function must not
// mutate the map during its invocation.
func (m *Map[K, V]) ComputeIfAbsent(key K, compute func(key K) V) (V, bool) {
	if cur, found := m.fwd.Get(key); found {
		return cur, true
	}

	value, _ := m.guarded(func() (V, bool) { return compute(key), true })

	m.Put(key, value)

	return value, true
}

// ComputeIfPresent remaps the value only when the key is bound.
//
// Returning keep=false removes the pair. The function must not mutate the map
// during its invocation.
func (m *Map[K, V]) ComputeIfPresent(key K, remap func(key K, value V) (V, bool)) (V, bool) {
	old, found := m.fwd.Get(key)
	if !found {
		var zero V

		return zero, false
	}

	newValue, keep := m.guarded(func() (V, bool) { return remap(key, old) })
	if !keep {
		m.Delete(key)

		var zero V

		return zero, false
	}

	m.Put(key, newValue)

	return newValue, true
}

// Merge stores the value when the key is unbound, otherwise remaps the current
// and given values into the stored one.
//
// Returning keep=false removes the pair. The function must not mutate the map
// during its invocation.
func (m *Map[K, V]) Merge(key K, value V, remap func(old, value V) (V, bool)) (V, bool) {
	old, found := m.fwd.Get(key)
	if !found {
		m.Put(key, value)

		return value, true
	}

	newValue, keep := m.guarded(func() (V, bool) { return remap(old, value) })
	if !keep {
		m.Delete(key)

		var zero V

		return zero, false
	}

	m.Put(key, newValue)

	return newValue, true
}

// --------------------------------------------------------------------------------
// Navigation Operations

// Begin returns the pair with the least key, if any. Time complexity: O(log n).
func (m *Map[K, V]) Begin() (key K, value V, found bool) {
	return m.fwd.Begin()
}

// End returns the pair with the greatest key, if any. Time complexity: O(log n).
func (m *Map[K, V]) End() (key K, value V, found bool) {
	return m.fwd.End()
}

// BeginValue returns the pair with the least value, if any. Time complexity: O(log n).
func (m *Map[K, V]) BeginValue() (key K, value V, found bool) {
	value, key, found = m.inv.Begin()

	return key, value, found
}

// EndValue returns the pair with the greatest value, if any. Time complexity: O(log n).
func (m *Map[K, V]) EndValue() (key K, value V, found bool) {
	value, key, found = m.inv.End()

	return key, value, found
}

// DeleteBegin removes and returns the pair with the least key, if any.
//
// Time complexity: O(log n).
func (m *Map[K, V]) DeleteBegin() (key K, value V, found bool) {
	key, value, found = m.fwd.Begin()
	if !found {
		return key, value, false
	}

	m.Delete(key)

	return key, value, true
}

// DeleteEnd removes and returns the pair with the greatest key, if any.
//
// Time complexity: O(log n).
func (m *Map[K, V]) DeleteEnd() (key K, value V, found bool) {
	key, value, found = m.fwd.End()
	if !found {
		return key, value, false
	}

	m.Delete(key)

	return key, value, true
}

// LowerKey returns the greatest key strictly less than the given key.
func (m *Map[K, V]) LowerKey(key K) (K, bool) {
	if node, found := m.fwd.Lower(key); found {
		return node.Key, true
	}

	var zero K

	return zero, false
}

// FloorKey returns the greatest key less than or equal to the given key.
func (m *Map[K, V]) FloorKey(key K) (K, bool) {
	if node, found := m.fwd.Floor(key); found {
		return node.Key, true
	}

	var zero K

	return zero, false
}

// CeilingKey returns the least key greater than or equal to the given key.
func (m *Map[K, V]) CeilingKey(key K) (K, bool) {
	if node, found := m.fwd.Ceiling(key); found {
		return node.Key, true
	}

	var zero K

	return zero, false
}

// HigherKey returns the least key strictly greater than the given key.
func (m *Map[K, V]) HigherKey(key K) (K, bool) {
	if node, found := m.fwd.Higher(key); found {
		return node.Key, true
	}

	var zero K

	return zero, false
}

// --------------------------------------------------------------------------------
// Bulk Views

// Keys returns all keys in ascending key order. Time complexity: O(n).
func (m *Map[K, V]) Keys() []K {
	return m.fwd.Keys()
}

// Values returns all values in ascending value order. Time complexity: O(n).
func (m *Map[K, V]) Values() []V {
	return m.inv.Keys()
}

// Entries returns all keys and their values in ascending key order.
//
// Time complexity: O(n).
func (m *Map[K, V]) Entries() ([]K, []V) {
	return m.fwd.KeysAndValues()
}

// Iter returns a sequence over the pairs in ascending key order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return m.fwd.Iter()
}

// RIter returns a sequence over the pairs in descending key order.
func (m *Map[K, V]) RIter() iter.Seq2[K, V] {
	return m.fwd.RIter()
}

// --------------------------------------------------------------------------------
// Whole-Map Operations

// Clone returns a deep copy of the map sharing the comparators.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		fwd: m.fwd.Clone(),
		inv: m.inv.Clone(),
	}
}

// Equal reports whether both maps hold the same pairs, comparing keys and
// values with this map's comparators. Time complexity: O(n log n).
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}

	for k, v := range other.Iter() {
		cur, found := m.fwd.Get(k)
		if !found || m.inv.Comparator(cur, v) != 0 {
			return false
		}
	}

	return true
}

// Hash returns an order-independent hash of the map: the sum over all pairs of
// hash(key) XOR hash(value). Equal maps built in different orders hash alike.
//
// Time complexity: O(n).
func (m *Map[K, V]) Hash() uint64 {
	var sum uint64

	for k, v := range m.Iter() {
		sum += hashString(util.ToString(k)) ^ hashString(util.ToString(v))
	}

	return sum
}

// String returns the pairs in forward key order, formatted as
// {k1=v1, k2=v2, ...}.
func (m *Map[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	first := true
	for k, v := range m.Iter() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%v=%v", k, v)
	}

	sb.WriteString("}")

	return sb.String()
}

// --------------------------------------------------------------------------------
// Private Helpers

// validate rejects nil keys and values at the entry points so the inner trees
// never observe them.
func (m *Map[K, V]) validate(key K, value V) {
	if util.IsNil(key) || util.IsNil(value) {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrNilArgument))
	}
}

// guarded invokes the closure and panics wrapping
// container.ErrConcurrentModification if the closure structurally modified
// the map.
func (m *Map[K, V]) guarded(fn func() (V, bool)) (V, bool) {
	snapshot := m.mods

	value, keep := fn()

	if m.mods != snapshot {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrConcurrentModification))
	}

	return value, keep
}

// checkedDeleteInv removes (value → key) from the inverse tree after verifying
// the association, panicking wrapping container.ErrCorrupted on mismatch.
func (m *Map[K, V]) checkedDeleteInv(value V, key K) {
	bound, found := m.inv.Get(value)
	if !found || m.fwd.Comparator(bound, key) != 0 {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrCorrupted))
	}

	m.inv.Delete(value)
}

// checkedDeleteFwd removes (key → value) from the forward tree after verifying
// the association, panicking wrapping container.ErrCorrupted on mismatch.
func (m *Map[K, V]) checkedDeleteFwd(key K, value V) {
	bound, found := m.fwd.Get(key)
	if !found || m.inv.Comparator(bound, value) != 0 {
		panic(fmt.Errorf("dualtreebimap: %w", container.ErrCorrupted))
	}

	m.fwd.Delete(key)
}

// hashString folds a string with 64-bit FNV-1a.
func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))

	return h.Sum64()
}
