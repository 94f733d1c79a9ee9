// Package dualtreebimap provides live key, value, and entry views over the map.
//
// Each view is a thin adapter holding a reference to the parent map: queries
// read through to the trees and mutations route back to the map, so a view
// never goes stale. Views are created lazily and are cheap to construct.
package dualtreebimap

import (
	"fmt"
	"iter"
	"strings"
)

// --------------------------------------------------------------------------------
// Key View

// KeyView is a live set projection of the map's keys, ordered by the key
// comparator. It does not support adding keys.
type KeyView[K comparable, V comparable] struct {
	m *Map[K, V]
}

// KeyView returns a live view of the map's keys.
func (m *Map[K, V]) KeyView() *KeyView[K, V] {
	return &KeyView[K, V]{m: m}
}

// Len returns the number of keys.
func (kv *KeyView[K, V]) Len() int { return kv.m.Len() }

// IsEmpty reports whether the view holds no keys.
func (kv *KeyView[K, V]) IsEmpty() bool { return kv.m.IsEmpty() }

// Contains checks if all given keys are bound in the parent map.
func (kv *KeyView[K, V]) Contains(keys ...K) bool {
	for _, k := range keys {
		if !kv.m.Has(k) {
			return false
		}
	}

	return true
}

// Delete removes the pair with the given key from the parent map.
func (kv *KeyView[K, V]) Delete(key K) bool {
	_, found := kv.m.Delete(key)

	return found
}

// DeleteAll removes the pairs with the given keys, returning how many existed.
func (kv *KeyView[K, V]) DeleteAll(keys ...K) int {
	removed := 0

	for _, k := range keys {
		if _, found := kv.m.Delete(k); found {
			removed++
		}
	}

	return removed
}

// DeleteIf removes every pair whose key satisfies the predicate.
//
// The removal is structural but advances the modification counter once
// overall, not per pair. Returns the number of removed pairs.
func (kv *KeyView[K, V]) DeleteIf(pred func(key K) bool) int {
	var doomed []K

	for k := range kv.m.Iter() {
		if pred(k) {
			doomed = append(doomed, k)
		}
	}

	for _, k := range doomed {
		kv.m.deleteQuiet(k)
	}

	if len(doomed) > 0 {
		kv.m.mods++
	}

	return len(doomed)
}

// RetainAll removes every pair whose key is not among the given keys,
// returning the number of removed pairs.
func (kv *KeyView[K, V]) RetainAll(keys ...K) int {
	return kv.DeleteIf(func(k K) bool {
		for _, keep := range keys {
			if kv.m.fwd.Comparator(k, keep) == 0 {
				return false
			}
		}

		return true
	})
}

// Values returns the keys in ascending key order.
func (kv *KeyView[K, V]) Values() []K { return kv.m.Keys() }

// Clear removes all pairs from the parent map.
func (kv *KeyView[K, V]) Clear() { kv.m.Clear() }

// Iter returns a sequence over the keys in ascending order.
func (kv *KeyView[K, V]) Iter() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range kv.m.Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

// RIter returns a sequence over the keys in descending order.
func (kv *KeyView[K, V]) RIter() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range kv.m.RIter() {
			if !yield(k) {
				return
			}
		}
	}
}

// String returns a string representation of the key view.
func (kv *KeyView[K, V]) String() string {
	return viewString("KeyView", kv.Iter())
}

// --------------------------------------------------------------------------------
// Value View

// ValueView is a live set projection of the map's values, ordered by the value
// comparator. Membership is a reverse-index lookup. It does not support adding
// values.
type ValueView[K comparable, V comparable] struct {
	m *Map[K, V]
}

// ValueView returns a live view of the map's values.
func (m *Map[K, V]) ValueView() *ValueView[K, V] {
	return &ValueView[K, V]{m: m}
}

// Len returns the number of values.
func (vv *ValueView[K, V]) Len() int { return vv.m.Len() }

// IsEmpty reports whether the view holds no values.
func (vv *ValueView[K, V]) IsEmpty() bool { return vv.m.IsEmpty() }

// Contains checks if all given values are bound in the parent map.
func (vv *ValueView[K, V]) Contains(values ...V) bool {
	for _, v := range values {
		if !vv.m.HasValue(v) {
			return false
		}
	}

	return true
}

// Delete removes the pair holding the given value from the parent map.
func (vv *ValueView[K, V]) Delete(value V) bool {
	_, found := vv.m.DeleteValue(value)

	return found
}

// DeleteIf removes every pair whose value satisfies the predicate.
//
// The removal advances the modification counter once overall. Returns the
// number of removed pairs.
func (vv *ValueView[K, V]) DeleteIf(pred func(value V) bool) int {
	var doomed []V

	for v := range vv.Iter() {
		if pred(v) {
			doomed = append(doomed, v)
		}
	}

	for _, v := range doomed {
		vv.m.deleteValueQuiet(v)
	}

	if len(doomed) > 0 {
		vv.m.mods++
	}

	return len(doomed)
}

// Values returns the values in ascending value order.
func (vv *ValueView[K, V]) Values() []V { return vv.m.Values() }

// Clear removes all pairs from the parent map.
func (vv *ValueView[K, V]) Clear() { vv.m.Clear() }

// Iter returns a sequence over the values in ascending value order.
func (vv *ValueView[K, V]) Iter() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range vv.m.inv.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

// RIter returns a sequence over the values in descending value order.
func (vv *ValueView[K, V]) RIter() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range vv.m.inv.RIter() {
			if !yield(v) {
				return
			}
		}
	}
}

// String returns a string representation of the value view.
func (vv *ValueView[K, V]) String() string {
	return viewString("ValueView", vv.Iter())
}

// --------------------------------------------------------------------------------
// Entry View

// EntryView is a live projection of the map's pairs in key order.
//
// Its Iterator supports in-place removal and the strict SetValue contract.
type EntryView[K comparable, V comparable] struct {
	m *Map[K, V]
}

// EntryView returns a live view of the map's pairs.
func (m *Map[K, V]) EntryView() *EntryView[K, V] {
	return &EntryView[K, V]{m: m}
}

// Len returns the number of pairs.
func (ev *EntryView[K, V]) Len() int { return ev.m.Len() }

// IsEmpty reports whether the view holds no pairs.
func (ev *EntryView[K, V]) IsEmpty() bool { return ev.m.IsEmpty() }

// Contains reports whether the exact pair is present, comparing the stored
// value with the value comparator.
func (ev *EntryView[K, V]) Contains(key K, value V) bool {
	cur, found := ev.m.Get(key)

	return found && ev.m.inv.Comparator(cur, value) == 0
}

// Delete removes the pair only when the key is currently bound to the value.
func (ev *EntryView[K, V]) Delete(key K, value V) bool {
	return ev.m.DeleteIf(key, value)
}

// Iter returns a sequence over the pairs in ascending key order.
func (ev *EntryView[K, V]) Iter() iter.Seq2[K, V] { return ev.m.Iter() }

// RIter returns a sequence over the pairs in descending key order.
func (ev *EntryView[K, V]) RIter() iter.Seq2[K, V] { return ev.m.RIter() }

// Iterator returns a mutable iterator over the pairs in key order.
func (ev *EntryView[K, V]) Iterator() *Iterator[K, V] { return ev.m.Iterator() }

// Clear removes all pairs from the parent map.
func (ev *EntryView[K, V]) Clear() { ev.m.Clear() }

// String returns a string representation of the entry view.
func (ev *EntryView[K, V]) String() string {
	return "EntryView\n" + ev.m.String()
}

// --------------------------------------------------------------------------------
// Private Helpers

// deleteQuiet removes the pair by key without advancing the modification
// counter. Used by the bulk view mutators that count one structural change.
func (m *Map[K, V]) deleteQuiet(key K) {
	value, found := m.fwd.Get(key)
	if !found {
		return
	}

	m.checkedDeleteInv(value, key)
	m.fwd.Delete(key)
}

// deleteValueQuiet removes the pair by value without advancing the
// modification counter.
func (m *Map[K, V]) deleteValueQuiet(value V) {
	key, found := m.inv.Get(value)
	if !found {
		return
	}

	m.checkedDeleteFwd(key, value)
	m.inv.Delete(value)
}

// viewString renders a view's elements for debugging.
func viewString[T any](name string, seq iter.Seq[T]) string {
	var sb strings.Builder

	sb.WriteString(name)
	sb.WriteString("[")

	first := true
	for v := range seq {
		if !first {
			sb.WriteString(" ")
		}

		first = false

		fmt.Fprintf(&sb, "%v", v)
	}

	sb.WriteString("]")

	return sb.String()
}
