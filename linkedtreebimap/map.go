// Package linkedtreebimap implements a bidirectional map backed by a single
// pool of nodes threaded into two red-black trees.
//
// This structure guarantees that the map will be in both ascending key and
// value order while storing each (key, value) pair exactly once: every node
// participates simultaneously in a tree ordered by key and a tree ordered by
// value, which saves roughly half the memory of keeping two pair copies.
//
// Putting a pair whose key is already bound replaces that key's pair; putting
// a pair whose value is already bound evicts the previous holder of the
// value. Equality of keys and values is defined by the comparators returning
// zero, not by native equality.
//
// Structure is not thread safe.
//
// Reference: https://en.wikipedia.org/wiki/Bidirectional_map
package linkedtreebimap

import (
	"fmt"
	"hash/fnv"
	"iter"
	"strings"

	"github.com/qntx/bidimap/cmp"
	"github.com/qntx/bidimap/container"
	"github.com/qntx/bidimap/util"
)

// Ensure Map implements the shared contracts at compile time.
var (
	_ container.OrderedBiMap[string, int]      = (*Map[string, int])(nil)
	_ container.EnumerableWithKey[string, int] = (*Map[string, int])(nil)
)

// Map holds the pairs in a single node pool rooted in two red-black trees.
type Map[K comparable, V comparable] struct {
	root [2]*node[K, V] // Roots of the key tree and the value tree.
	size int
	mods int // Structural modification counter, observed by iterators.
	kcmp cmp.Comparator[K]
	vcmp cmp.Comparator[V]

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
	return &Map[K, V]{kcmp: keyComparator, vcmp: valueComparator}
}

// NewFrom instantiates a bidirectional map with natural ordering, populated
// from the given Go map. Pairs sharing a value collapse to a single pair;
// which one survives follows Go's map iteration order.
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
	if n := m.lookupKey(key); n != nil {
		return n.value, true
	}

	return value, false
}

// GetKey searches the pair by value and returns its key.
//
// Second return parameter is true if the value was found. Time complexity: O(log n).
func (m *Map[K, V]) GetKey(value V) (key K, found bool) {
	if n := m.lookupValue(value); n != nil {
		return n.key, true
	}

	return key, false
}

// Has reports whether the key is bound. Time complexity: O(log n).
func (m *Map[K, V]) Has(key K) bool {
	return m.lookupKey(key) != nil
}

// HasValue reports whether the value is bound. Time complexity: O(log n).
func (m *Map[K, V]) HasValue(value V) bool {
	return m.lookupValue(value) != nil
}

// Len returns the number of pairs in the map. Time complexity: O(1).
func (m *Map[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map contains no pairs. Time complexity: O(1).
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// --------------------------------------------------------------------------------
// Mutation Operations

// Put inserts the pair into the map.
//
// After the call (key, value) is present: any prior pair (key, v') is
// replaced, and any prior pair (k', value) with a different key is evicted so
// the value stays unique. The eviction transplants the surviving node into
// the evicted holder's value-tree position instead of a delete-insert cycle.
// Returns the value previously bound to the key, if any. Putting a pair
// identical (under the value comparator) to the stored one is a no-op that
// performs no structural change.
//
// Panics wrapping container.ErrNilArgument on nil keys or values.
// Time complexity: O(log n).
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced bool) {
	m.validate(key, value)

	var target *node[K, V]

	if n := m.lookupKey(key); n != nil {
		if m.vcmp(n.value, value) == 0 {
			// Identity replace, short-circuit before any structural change.
			return n.value, true
		}

		prev, replaced = n.value, true

		m.deleteNode(valSide, n)
		n.value = value
		target = n
	} else {
		target = newNode(key, value)
		m.insertKeyNode(target)
		m.size++
	}

	if victim := m.lookupValue(value); victim != nil && victim != target {
		// The value is held by (k', value): transplant the surviving node
		// onto the holder's value-tree position, then evict the holder.
		m.takeValuePosition(target, victim)
		m.deleteNode(keySide, victim)
		m.size--
	} else {
		m.insertValueNode(target)
	}

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

	if n := m.lookupKey(key); n != nil {
		return n.value, false
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

	if m.lookupKey(key) == nil {
		return old, false
	}

	return m.Put(key, value)
}

// ReplaceIf updates the value for the key only when the current value equals
// old under the value comparator. Time complexity: O(log n).
func (m *Map[K, V]) ReplaceIf(key K, old, value V) bool {
	m.validate(key, value)

	n := m.lookupKey(key)
	if n == nil || m.vcmp(n.value, old) != 0 {
		return false
	}

	m.Put(key, value)

	return true
}

// Delete removes the pair with the given key.
//
// Returns the removed value and whether the key was found. Time complexity: O(log n).
func (m *Map[K, V]) Delete(key K) (value V, found bool) {
	n := m.lookupKey(key)
	if n == nil {
		return value, false
	}

	value = n.value

	m.removeNode(n)

	return value, true
}

// DeleteValue removes the pair holding the given value.
//
// Returns the removed pair's key and whether the value was found. Time complexity: O(log n).
func (m *Map[K, V]) DeleteValue(value V) (key K, found bool) {
	n := m.lookupValue(value)
	if n == nil {
		return key, false
	}

	key = n.key

	m.removeNode(n)

	return key, true
}

// DeleteIf removes the pair only when the key is currently bound to the given
// value under the value comparator. Time complexity: O(log n).
func (m *Map[K, V]) DeleteIf(key K, value V) bool {
	n := m.lookupKey(key)
	if n == nil || m.vcmp(n.value, value) != 0 {
		return false
	}

	m.removeNode(n)

	return true
}

// Clear removes all pairs from the map.
func (m *Map[K, V]) Clear() {
	m.root[keySide] = nil
	m.root[valSide] = nil
	m.size = 0
	m.mods++
}

// --------------------------------------------------------------------------------
// Compute Operations

// Compute applies the remapping function to the pair for the key.
//
// The function receives the current value (zero if absent) and whether the
// key is bound; it returns the new value and whether the pair should be kept.
// A kept value is stored with full Put semantics; a dropped pair is removed.
//
// The function must not mutate the map: a structural change during its
// invocation panics wrapping container.ErrConcurrentModification.
func (m *Map[K, V]) Compute(key K, remap func(value V, found bool) (V, bool)) (V, bool) {
	var old V

	found := false
	if n := m.lookupKey(key); n != nil {
		old, found = n.value, true
	}

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
	if n := m.lookupKey(key); n != nil {
		return n.value, true
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
	n := m.lookupKey(key)
	if n == nil {
		var zero V

		return zero, false
	}

	old := n.value

	newValue, keep := m.guarded(func() (V, bool) { return remap(key, old) })
	if !keep {
		m.Delete(key)

		var zero V

		return zero, false
	}

	m.Put(key, newValue)

	return newValue, true
}

// Merge stores the value when the key is unbound, otherwise remaps the
// current and given values into the stored one.
//
// Returning keep=false removes the pair. The function must not mutate the map
// during its invocation.
func (m *Map[K, V]) Merge(key K, value V, remap func(old, value V) (V, bool)) (V, bool) {
	n := m.lookupKey(key)
	if n == nil {
		m.Put(key, value)

		return value, true
	}

	old := n.value

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
	if n := m.least(keySide, m.root[keySide]); n != nil {
		return n.key, n.value, true
	}

	return key, value, false
}

// End returns the pair with the greatest key, if any. Time complexity: O(log n).
func (m *Map[K, V]) End() (key K, value V, found bool) {
	if n := m.greatest(keySide, m.root[keySide]); n != nil {
		return n.key, n.value, true
	}

	return key, value, false
}

// BeginValue returns the pair with the least value, if any. Time complexity: O(log n).
func (m *Map[K, V]) BeginValue() (key K, value V, found bool) {
	if n := m.least(valSide, m.root[valSide]); n != nil {
		return n.key, n.value, true
	}

	return key, value, false
}

// EndValue returns the pair with the greatest value, if any. Time complexity: O(log n).
func (m *Map[K, V]) EndValue() (key K, value V, found bool) {
	if n := m.greatest(valSide, m.root[valSide]); n != nil {
		return n.key, n.value, true
	}

	return key, value, false
}

// DeleteBegin removes and returns the pair with the least key, if any.
//
// Time complexity: O(log n).
func (m *Map[K, V]) DeleteBegin() (key K, value V, found bool) {
	n := m.least(keySide, m.root[keySide])
	if n == nil {
		return key, value, false
	}

	key, value = n.key, n.value

	m.removeNode(n)

	return key, value, true
}

// DeleteEnd removes and returns the pair with the greatest key, if any.
//
// Time complexity: O(log n).
func (m *Map[K, V]) DeleteEnd() (key K, value V, found bool) {
	n := m.greatest(keySide, m.root[keySide])
	if n == nil {
		return key, value, false
	}

	key, value = n.key, n.value

	m.removeNode(n)

	return key, value, true
}

// LowerKey returns the greatest key strictly less than the given key.
func (m *Map[K, V]) LowerKey(key K) (K, bool) {
	exact, below, _ := m.seekKey(key)
	if exact != nil {
		below = m.nextSmaller(keySide, exact)
	}

	if below != nil {
		return below.key, true
	}

	var zero K

	return zero, false
}

// FloorKey returns the greatest key less than or equal to the given key.
func (m *Map[K, V]) FloorKey(key K) (K, bool) {
	exact, below, _ := m.seekKey(key)
	if exact != nil {
		return exact.key, true
	}

	if below != nil {
		return below.key, true
	}

	var zero K

	return zero, false
}

// CeilingKey returns the least key greater than or equal to the given key.
func (m *Map[K, V]) CeilingKey(key K) (K, bool) {
	exact, _, above := m.seekKey(key)
	if exact != nil {
		return exact.key, true
	}

	if above != nil {
		return above.key, true
	}

	var zero K

	return zero, false
}

// HigherKey returns the least key strictly greater than the given key.
func (m *Map[K, V]) HigherKey(key K) (K, bool) {
	exact, _, above := m.seekKey(key)
	if exact != nil {
		above = m.nextGreater(keySide, exact)
	}

	if above != nil {
		return above.key, true
	}

	var zero K

	return zero, false
}

// --------------------------------------------------------------------------------
// Bulk Views

// Keys returns all keys in ascending key order. Time complexity: O(n).
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)

	for n := m.least(keySide, m.root[keySide]); n != nil; n = m.nextGreater(keySide, n) {
		keys = append(keys, n.key)
	}

	return keys
}

// Values returns all values in ascending value order. Time complexity: O(n).
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)

	for n := m.least(valSide, m.root[valSide]); n != nil; n = m.nextGreater(valSide, n) {
		values = append(values, n.value)
	}

	return values
}

// Entries returns all keys and their values in ascending key order.
//
// Time complexity: O(n).
func (m *Map[K, V]) Entries() ([]K, []V) {
	keys := make([]K, 0, m.size)
	values := make([]V, 0, m.size)

	for n := m.least(keySide, m.root[keySide]); n != nil; n = m.nextGreater(keySide, n) {
		keys = append(keys, n.key)
		values = append(values, n.value)
	}

	return keys, values
}

// Iter returns a sequence over the pairs in ascending key order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.least(keySide, m.root[keySide]); n != nil; n = m.nextGreater(keySide, n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// RIter returns a sequence over the pairs in descending key order.
func (m *Map[K, V]) RIter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.greatest(keySide, m.root[keySide]); n != nil; n = m.nextSmaller(keySide, n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// --------------------------------------------------------------------------------
// Enumerable Operations

// Each invokes the given function once for each pair, in ascending key order.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for k, v := range m.Iter() {
		fn(k, v)
	}
}

// Any returns true if the function returns true for at least one pair.
func (m *Map[K, V]) Any(fn func(key K, value V) bool) bool {
	for k, v := range m.Iter() {
		if fn(k, v) {
			return true
		}
	}

	return false
}

// All returns true if the function returns true for every pair.
func (m *Map[K, V]) All(fn func(key K, value V) bool) bool {
	for k, v := range m.Iter() {
		if !fn(k, v) {
			return false
		}
	}

	return true
}

// Find returns the first pair (in key order) for which the function returns
// true, or zero values if no pair matches.
func (m *Map[K, V]) Find(fn func(key K, value V) bool) (K, V) {
	for k, v := range m.Iter() {
		if fn(k, v) {
			return k, v
		}
	}

	var (
		zeroK K
		zeroV V
	)

	return zeroK, zeroV
}

// --------------------------------------------------------------------------------
// Whole-Map Operations

// Clone returns a deep copy of the map sharing the comparators.
//
// The copy is rebuilt by sequential puts in key order. Time complexity: O(n log n).
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := NewWith[K, V](m.kcmp, m.vcmp)
	clone.PutAll(m.Iter())

	return clone
}

// Equal reports whether both maps hold the same pairs, comparing keys and
// values with this map's comparators. Time complexity: O(n log n).
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}

	for k, v := range other.Iter() {
		n := m.lookupKey(k)
		if n == nil || m.vcmp(n.value, v) != 0 {
			return false
		}
	}

	return true
}

// Hash returns an order-independent hash of the map: the sum over all pairs
// of hash(key) XOR hash(value). Equal maps built in different orders hash
// alike.
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

// Dump renders both embedded trees for debugging.
func (m *Map[K, V]) Dump() string {
	var sb strings.Builder

	sb.WriteString("KeyTree\n")

	if m.root[keySide] != nil {
		m.output(keySide, m.root[keySide], "", true, &sb)
	}

	sb.WriteString("ValueTree\n")

	if m.root[valSide] != nil {
		m.output(valSide, m.root[valSide], "", true, &sb)
	}

	return sb.String()
}

// --------------------------------------------------------------------------------
// Private Helpers

// removeNode detaches the node from both trees and releases it.
func (m *Map[K, V]) removeNode(n *node[K, V]) {
	m.deleteNode(keySide, n)
	m.deleteNode(valSide, n)
	m.size--
	m.mods++
}

// validate rejects nil keys and values at the entry points and probes the
// comparators, panicking wrapping container.ErrIncomparable when a comparator
// cannot handle the argument.
func (m *Map[K, V]) validate(key K, value V) {
	if util.IsNil(key) || util.IsNil(value) {
		panic(fmt.Errorf("linkedtreebimap: %w", container.ErrNilArgument))
	}

	if err := safeCompare(func() { m.kcmp(key, key) }); err != nil {
		panic(fmt.Errorf("linkedtreebimap: %w", err))
	}

	if err := safeCompare(func() { m.vcmp(value, value) }); err != nil {
		panic(fmt.Errorf("linkedtreebimap: %w", err))
	}
}

// guarded invokes the closure and panics wrapping
// container.ErrConcurrentModification if the closure structurally modified
// the map.
func (m *Map[K, V]) guarded(fn func() (V, bool)) (V, bool) {
	snapshot := m.mods

	value, keep := fn()

	if m.mods != snapshot {
		panic(fmt.Errorf("linkedtreebimap: %w", container.ErrConcurrentModification))
	}

	return value, keep
}

// output builds a string representation of one tree recursively.
func (m *Map[K, V]) output(s side, n *node[K, V], prefix string, isTail bool, sb *strings.Builder) {
	if n.right[s] != nil {
		newPrefix := prefix + ternary(isTail, "│   ", "    ")
		m.output(s, n.right[s], newPrefix, false, sb)
	}

	sb.WriteString(prefix)
	sb.WriteString(ternary(isTail, "└── ", "┌── "))
	fmt.Fprintf(sb, "%v=%v\n", n.key, n.value)

	if n.left[s] != nil {
		newPrefix := prefix + ternary(isTail, "    ", "│   ")
		m.output(s, n.left[s], newPrefix, true, sb)
	}
}

// safeCompare runs a comparator probe, converting a panic into an error.
func safeCompare(probe func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", container.ErrIncomparable, r)
		}
	}()

	probe()

	return nil
}

// hashString folds a string with 64-bit FNV-1a.
func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))

	return h.Sum64()
}

// ternary is a helper for conditional expressions.
func ternary[T any](cond bool, trueVal, falseVal T) T {
	if cond {
		return trueVal
	}

	return falseVal
}
