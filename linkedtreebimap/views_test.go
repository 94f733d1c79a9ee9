package linkedtreebimap_test

import (
	"slices"
	"testing"

	"github.com/qntx/bidimap/linkedtreebimap"
)

func TestInverseView(t *testing.T) {
	t.Parallel()

	m := linkedtreebimap.New[int, string]()
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	inv := m.Inverse()

	if k, found := inv.Get("b"); k != 2 || !found {
		t.Errorf("Inverse().Get(b) = (%d, %v), want (2, true)", k, found)
	}

	// Mutating through the inverse view mutates the original.
	inv.Put("d", 4)

	if v, found := m.Get(4); v != "d" || !found {
		t.Errorf("Get(4) = (%q, %v) after inverse put, want (d, true)", v, found)
	}

	if m.Inverse() != inv {
		t.Errorf("Inverse() is not a cached singleton")
	}

	if inv.Inverse() != m {
		t.Errorf("Inverse().Inverse() is not the original map")
	}

	if got, want := inv.Keys(), []string{"a", "b", "c", "d"}; !slices.Equal(got, want) {
		t.Errorf("Inverse().Keys() = %v, want %v", got, want)
	}

	if v, k, found := inv.Begin(); v != "a" || k != 1 || !found {
		t.Errorf("Inverse().Begin() = (%q, %d, %v), want (a, 1, true)", v, k, found)
	}

	if v, found := inv.HigherKey("b"); v != "c" || !found {
		t.Errorf("Inverse().HigherKey(b) = (%q, %v), want (c, true)", v, found)
	}

	if v, k, found := inv.DeleteEnd(); v != "d" || k != 4 || !found {
		t.Errorf("Inverse().DeleteEnd() = (%q, %d, %v), want (d, 4, true)", v, k, found)
	}

	if m.Has(4) {
		t.Errorf("pair (4, d) survived DeleteEnd through the inverse")
	}
}

func TestDescendingView(t *testing.T) {
	t.Parallel()

	m := linkedtreebimap.New[int, string]()
	m.Put(1, "a")
	m.Put(2, "b")
	m.Put(3, "c")

	d := m.Descending()

	if got, want := d.Keys(), []int{3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("Descending().Keys() = %v, want %v", got, want)
	}

	if k, v, _ := d.Begin(); k != 3 || v != "c" {
		t.Errorf("Descending().Begin() = (%d, %q), want (3, c)", k, v)
	}

	if k, found := d.LowerKey(2); k != 3 || !found {
		t.Errorf("Descending().LowerKey(2) = (%d, %v), want (3, true)", k, found)
	}

	if k, found := d.CeilingKey(2); k != 2 || !found {
		t.Errorf("Descending().CeilingKey(2) = (%d, %v), want (2, true)", k, found)
	}

	if m.Descending() != d {
		t.Errorf("Descending() is not a cached singleton")
	}

	if d.Ascending() != m {
		t.Errorf("Ascending() is not the original map")
	}

	if got, want := d.String(), "{3=c, 2=b, 1=a}"; got != want {
		t.Errorf("Descending().String() = %q, want %q", got, want)
	}
}

func TestKeyView(t *testing.T) {
	t.Parallel()

	m := linkedtreebimap.New[int, string]()
	for i := 1; i <= 6; i++ {
		m.Put(i, string(rune('a'+i)))
	}

	kv := m.KeyView()

	if !kv.Contains(1, 2) || kv.Contains(7) {
		t.Errorf("Contains misreported membership")
	}

	if !kv.Delete(1) {
		t.Errorf("Delete(1) = false, want true")
	}

	if removed := kv.DeleteIf(func(k int) bool { return k%2 == 0 }); removed != 3 {
		t.Errorf("DeleteIf(even) removed %d, want 3", removed)
	}

	if got, want := kv.Values(), []int{3, 5}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	if removed := kv.RetainAll(5); removed != 1 {
		t.Errorf("RetainAll(5) removed %d, want 1", removed)
	}

	if got, want := m.Keys(), []int{5}; !slices.Equal(got, want) {
		t.Errorf("parent Keys() = %v, want %v", got, want)
	}
}

func TestValueView(t *testing.T) {
	t.Parallel()

	m := linkedtreebimap.New[int, string]()
	m.Put(1, "c")
	m.Put(2, "a")
	m.Put(3, "b")

	vv := m.ValueView()

	if got, want := vv.Values(), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	var reversed []string

	for v := range vv.RIter() {
		reversed = append(reversed, v)
	}

	if want := []string{"c", "b", "a"}; !slices.Equal(reversed, want) {
		t.Errorf("RIter() values = %v, want %v", reversed, want)
	}

	if !vv.Delete("a") {
		t.Errorf("Delete(a) = false, want true")
	}

	if m.Has(2) {
		t.Errorf("Has(2) = true after value removal")
	}

	if removed := vv.DeleteIf(func(v string) bool { return v < "c" }); removed != 1 {
		t.Errorf("DeleteIf(<c) removed %d, want 1", removed)
	}

	if got, want := vv.Values(), []string{"c"}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestEntryView(t *testing.T) {
	t.Parallel()

	m := linkedtreebimap.New[int, string]()
	m.Put(1, "a")
	m.Put(2, "b")

	ev := m.EntryView()

	if !ev.Contains(1, "a") || ev.Contains(1, "b") {
		t.Errorf("Contains misreported membership")
	}

	if !ev.Delete(2, "b") {
		t.Errorf("Delete(2, b) = false, want true")
	}

	if ev.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ev.Len())
	}

	it := ev.Iterator()
	if !it.Next() || it.Key() != 1 || it.Value() != "a" {
		t.Errorf("entry iterator landed on (%d, %q), want (1, a)", it.Key(), it.Value())
	}
}
