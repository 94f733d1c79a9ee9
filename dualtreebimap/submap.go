// Package dualtreebimap provides range-restricted sub-map views.
//
// A SubMap is a live projection of the parent map restricted by a key range
// and a value range. Queries filter by both ranges; mutations route to the
// parent and are refused with container.ErrValueChangeNotAllowed when they
// would place a pair outside the projection or implicitly evict a pair the
// projection cannot see.
//
// The key range drives iteration through the forward tree's native
// navigation; pairs whose values fall outside the value range are skipped.
// Len counts the visible pairs by iterating them, whatever the value range.
// Membership queries are a single tree lookup followed by range checks.
package dualtreebimap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/bidimap/container"
	"github.com/qntx/bidimap/rbtree"
)

// Ensure SubMap implements the shared contract at compile time.
var _ container.OrderedBiMap[string, int] = (*SubMap[string, int])(nil)

// SubMap is a live view of the parent map restricted to a key range and a
// value range.
type SubMap[K comparable, V comparable] struct {
	m  *Map[K, V]
	kr container.Range[K]
	vr container.Range[V]
}

// --------------------------------------------------------------------------------
// Constructors

// SubMap returns a live view restricted to the given key and value ranges.
func (m *Map[K, V]) SubMap(keyRange container.Range[K], valueRange container.Range[V]) *SubMap[K, V] {
	return &SubMap[K, V]{m: m, kr: keyRange, vr: valueRange}
}

// HeadMap returns a live view of the pairs with keys below the bound.
func (m *Map[K, V]) HeadMap(bound K, inclusive bool) *SubMap[K, V] {
	return m.SubMap(container.HeadRange(bound, inclusive), container.FullRange[V]())
}

// TailMap returns a live view of the pairs with keys above the bound.
func (m *Map[K, V]) TailMap(bound K, inclusive bool) *SubMap[K, V] {
	return m.SubMap(container.TailRange(bound, inclusive), container.FullRange[V]())
}

// SubMap returns a view restricted further: the given ranges are intersected
// with the ranges already in effect.
func (s *SubMap[K, V]) SubMap(keyRange container.Range[K], valueRange container.Range[V]) *SubMap[K, V] {
	return &SubMap[K, V]{
		m:  s.m,
		kr: s.kr.Intersect(s.m.fwd.Comparator, keyRange),
		vr: s.vr.Intersect(s.m.inv.Comparator, valueRange),
	}
}

// HeadMap returns a view restricted further to keys below the bound.
func (s *SubMap[K, V]) HeadMap(bound K, inclusive bool) *SubMap[K, V] {
	return s.SubMap(container.HeadRange(bound, inclusive), container.FullRange[V]())
}

// TailMap returns a view restricted further to keys above the bound.
func (s *SubMap[K, V]) TailMap(bound K, inclusive bool) *SubMap[K, V] {
	return s.SubMap(container.TailRange(bound, inclusive), container.FullRange[V]())
}

// KeyRange returns the key range in effect.
func (s *SubMap[K, V]) KeyRange() container.Range[K] { return s.kr }

// ValueRange returns the value range in effect.
func (s *SubMap[K, V]) ValueRange() container.Range[V] { return s.vr }

// --------------------------------------------------------------------------------
// Query Operations

// Get searches the visible pair by key and returns its value.
func (s *SubMap[K, V]) Get(key K) (value V, found bool) {
	if !s.kr.Contains(s.m.fwd.Comparator, key) {
		var zero V

		return zero, false
	}

	value, found = s.m.Get(key)
	if !found || !s.vr.Contains(s.m.inv.Comparator, value) {
		var zero V

		return zero, false
	}

	return value, true
}

// GetKey searches the visible pair by value and returns its key.
//
// The reverse index alone can report pairs outside the key range, so the
// mapped key is always re-checked against it.
func (s *SubMap[K, V]) GetKey(value V) (key K, found bool) {
	if !s.vr.Contains(s.m.inv.Comparator, value) {
		var zero K

		return zero, false
	}

	key, found = s.m.GetKey(value)
	if !found || !s.kr.Contains(s.m.fwd.Comparator, key) {
		var zero K

		return zero, false
	}

	return key, true
}

// Has reports whether a visible pair holds the key.
func (s *SubMap[K, V]) Has(key K) bool {
	_, found := s.Get(key)

	return found
}

// HasValue reports whether a visible pair holds the value.
func (s *SubMap[K, V]) HasValue(value V) bool {
	_, found := s.GetKey(value)

	return found
}

// Len returns the number of visible pairs by counting.
//
// Time complexity: O(n) over the key range.
func (s *SubMap[K, V]) Len() int {
	count := 0

	for range s.Iter() {
		count++
	}

	return count
}

// IsEmpty reports whether the view holds no visible pairs.
func (s *SubMap[K, V]) IsEmpty() bool {
	_, _, found := s.Begin()

	return !found
}

// --------------------------------------------------------------------------------
// Mutation Operations

// Put inserts the pair through the view.
//
// The pair must fall inside both ranges, and the put must not replace or
// evict any pair the view cannot see; otherwise the map is left unchanged and
// container.ErrValueChangeNotAllowed is returned. Returns the value
// previously bound to the key, if any.
func (s *SubMap[K, V]) Put(key K, value V) (prev V, replaced bool, err error) {
	s.m.validate(key, value)

	var zero V

	if !s.kr.Contains(s.m.fwd.Comparator, key) || !s.vr.Contains(s.m.inv.Comparator, value) {
		return zero, false, fmt.Errorf("dualtreebimap: %w", container.ErrValueChangeNotAllowed)
	}

	// Replacing the key's pair must not touch a pair hidden by the value range.
	if old, bound := s.m.Get(key); bound && !s.vr.Contains(s.m.inv.Comparator, old) {
		return zero, false, fmt.Errorf("dualtreebimap: %w", container.ErrValueChangeNotAllowed)
	}

	// Evicting the value's holder must stay inside the view.
	if holder, bound := s.m.GetKey(value); bound && s.m.fwd.Comparator(holder, key) != 0 &&
		!s.kr.Contains(s.m.fwd.Comparator, holder) {
		return zero, false, fmt.Errorf("dualtreebimap: %w", container.ErrValueChangeNotAllowed)
	}

	prev, replaced = s.m.Put(key, value)

	return prev, replaced, nil
}

// PutIfAbsent inserts the pair only if the key is unbound in the view.
//
// When the key is bound to a visible pair the call is a no-op returning the
// current value. A key bound outside the view, or a value held by a pair
// outside the view, yields container.ErrValueChangeNotAllowed.
func (s *SubMap[K, V]) PutIfAbsent(key K, value V) (V, bool, error) {
	if cur, found := s.Get(key); found {
		return cur, false, nil
	}

	var zero V

	// The key may be bound to a pair the value range hides.
	if _, bound := s.m.Get(key); bound {
		return zero, false, fmt.Errorf("dualtreebimap: %w", container.ErrValueChangeNotAllowed)
	}

	if _, _, err := s.Put(key, value); err != nil {
		return zero, false, err
	}

	return value, true, nil
}

// Delete removes the visible pair with the given key.
func (s *SubMap[K, V]) Delete(key K) (value V, found bool) {
	value, found = s.Get(key)
	if !found {
		return value, false
	}

	s.m.Delete(key)

	return value, true
}

// DeleteValue removes the visible pair holding the given value.
func (s *SubMap[K, V]) DeleteValue(value V) (key K, found bool) {
	key, found = s.GetKey(value)
	if !found {
		return key, false
	}

	s.m.DeleteValue(value)

	return key, true
}

// DeleteIf removes the visible pair only when the key is bound to the value.
func (s *SubMap[K, V]) DeleteIf(key K, value V) bool {
	cur, found := s.Get(key)
	if !found || s.m.inv.Comparator(cur, value) != 0 {
		return false
	}

	s.m.Delete(key)

	return true
}

// Clear removes all visible pairs from the parent map, leaving pairs outside
// the projection untouched. Advances the modification counter once overall.
func (s *SubMap[K, V]) Clear() {
	var doomed []K

	for k := range s.Iter() {
		doomed = append(doomed, k)
	}

	for _, k := range doomed {
		s.m.deleteQuiet(k)
	}

	if len(doomed) > 0 {
		s.m.mods++
	}
}

// --------------------------------------------------------------------------------
// Navigation Operations

// Begin returns the visible pair with the least key, if any.
func (s *SubMap[K, V]) Begin() (K, V, bool) {
	return s.seekForward(s.lowerEdge())
}

// End returns the visible pair with the greatest key, if any.
func (s *SubMap[K, V]) End() (K, V, bool) {
	return s.seekBackward(s.upperEdge())
}

// DeleteBegin removes and returns the visible pair with the least key.
//
// The polled pair satisfies both ranges; pairs whose values fall outside the
// value range are skipped, not removed.
func (s *SubMap[K, V]) DeleteBegin() (key K, value V, found bool) {
	key, value, found = s.Begin()
	if !found {
		return key, value, false
	}

	s.m.Delete(key)

	return key, value, true
}

// DeleteEnd removes and returns the visible pair with the greatest key.
//
// The polled pair satisfies both ranges; pairs whose values fall outside the
// value range are skipped, not removed.
func (s *SubMap[K, V]) DeleteEnd() (key K, value V, found bool) {
	key, value, found = s.End()
	if !found {
		return key, value, false
	}

	s.m.Delete(key)

	return key, value, true
}

// LowerKey returns the greatest visible key strictly less than the given key.
func (s *SubMap[K, V]) LowerKey(key K) (K, bool) {
	node, found := s.m.fwd.Lower(key)
	if !found {
		var zero K

		return zero, false
	}

	k, _, ok := s.seekBackward(node)

	return k, ok
}

// FloorKey returns the greatest visible key less than or equal to the given key.
func (s *SubMap[K, V]) FloorKey(key K) (K, bool) {
	node, found := s.m.fwd.Floor(key)
	if !found {
		var zero K

		return zero, false
	}

	k, _, ok := s.seekBackward(node)

	return k, ok
}

// CeilingKey returns the least visible key greater than or equal to the given key.
func (s *SubMap[K, V]) CeilingKey(key K) (K, bool) {
	node, found := s.m.fwd.Ceiling(key)
	if !found {
		var zero K

		return zero, false
	}

	k, _, ok := s.seekForward(node)

	return k, ok
}

// HigherKey returns the least visible key strictly greater than the given key.
func (s *SubMap[K, V]) HigherKey(key K) (K, bool) {
	node, found := s.m.fwd.Higher(key)
	if !found {
		var zero K

		return zero, false
	}

	k, _, ok := s.seekForward(node)

	return k, ok
}

// --------------------------------------------------------------------------------
// Bulk Views

// Keys returns the visible keys in ascending key order.
func (s *SubMap[K, V]) Keys() []K {
	var keys []K

	for k := range s.Iter() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns the visible values in ascending value order.
//
// Iteration drives from the reverse index and filters each pair by checking
// that the mapped key belongs to the key range.
func (s *SubMap[K, V]) Values() []V {
	var values []V

	for v, k := range s.m.inv.Iter() {
		if s.visible(k, v) {
			values = append(values, v)
		}
	}

	return values
}

// Entries returns the visible keys and their values in ascending key order.
func (s *SubMap[K, V]) Entries() ([]K, []V) {
	var (
		keys   []K
		values []V
	)

	for k, v := range s.Iter() {
		keys = append(keys, k)
		values = append(values, v)
	}

	return keys, values
}

// Iter returns a sequence over the visible pairs in ascending key order.
func (s *SubMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		k, v, found := s.Begin()
		for found {
			if !yield(k, v) {
				return
			}

			k, v, found = s.higherPair(k)
		}
	}
}

// RIter returns a sequence over the visible pairs in descending key order.
func (s *SubMap[K, V]) RIter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		k, v, found := s.End()
		for found {
			if !yield(k, v) {
				return
			}

			k, v, found = s.lowerPair(k)
		}
	}
}

// String returns the visible pairs in forward key order, formatted as
// {k1=v1, k2=v2, ...}.
func (s *SubMap[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	first := true
	for k, v := range s.Iter() {
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

// visible reports whether the pair satisfies both ranges.
func (s *SubMap[K, V]) visible(key K, value V) bool {
	return s.kr.Contains(s.m.fwd.Comparator, key) && s.vr.Contains(s.m.inv.Comparator, value)
}

// lowerEdge returns the first tree node at or above the key range's lower bound.
func (s *SubMap[K, V]) lowerEdge() *rbtree.Node[K, V] {
	if lo, inclusive, ok := s.kr.Lower(); ok {
		var (
			n     *rbtree.Node[K, V]
			found bool
		)

		if inclusive {
			n, found = s.m.fwd.Ceiling(lo)
		} else {
			n, found = s.m.fwd.Higher(lo)
		}

		if !found {
			return nil
		}

		return n
	}

	return s.m.fwd.Left()
}

// upperEdge returns the last tree node at or below the key range's upper bound.
func (s *SubMap[K, V]) upperEdge() *rbtree.Node[K, V] {
	if hi, inclusive, ok := s.kr.Upper(); ok {
		var (
			n     *rbtree.Node[K, V]
			found bool
		)

		if inclusive {
			n, found = s.m.fwd.Floor(hi)
		} else {
			n, found = s.m.fwd.Lower(hi)
		}

		if !found {
			return nil
		}

		return n
	}

	return s.m.fwd.Right()
}

// seekForward walks ascending from the node to the first visible pair.
func (s *SubMap[K, V]) seekForward(n *rbtree.Node[K, V]) (K, V, bool) {
	for n != nil {
		if s.kr.TooHigh(s.m.fwd.Comparator, n.Key) {
			break
		}

		if s.visible(n.Key, n.Value) {
			return n.Key, n.Value, true
		}

		next, found := s.m.fwd.Higher(n.Key)
		if !found {
			break
		}

		n = next
	}

	var (
		zeroK K
		zeroV V
	)

	return zeroK, zeroV, false
}

// seekBackward walks descending from the node to the first visible pair.
func (s *SubMap[K, V]) seekBackward(n *rbtree.Node[K, V]) (K, V, bool) {
	for n != nil {
		if s.kr.TooLow(s.m.fwd.Comparator, n.Key) {
			break
		}

		if s.visible(n.Key, n.Value) {
			return n.Key, n.Value, true
		}

		prev, found := s.m.fwd.Lower(n.Key)
		if !found {
			break
		}

		n = prev
	}

	var (
		zeroK K
		zeroV V
	)

	return zeroK, zeroV, false
}

// higherPair returns the first visible pair with a key above the given one.
func (s *SubMap[K, V]) higherPair(key K) (K, V, bool) {
	n, found := s.m.fwd.Higher(key)
	if !found {
		var (
			zeroK K
			zeroV V
		)

		return zeroK, zeroV, false
	}

	return s.seekForward(n)
}

// lowerPair returns the first visible pair with a key below the given one.
func (s *SubMap[K, V]) lowerPair(key K) (K, V, bool) {
	n, found := s.m.fwd.Lower(key)
	if !found {
		var (
			zeroK K
			zeroV V
		)

		return zeroK, zeroV, false
	}

	return s.seekBackward(n)
}
