package dualtreebimap_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/qntx/bidimap/container"
	"github.com/qntx/bidimap/dualtreebimap"
)

// ranged builds a map of 1..5 keyed to letters and a [2, 4) key-range view.
func ranged() (*dualtreebimap.Map[int, string], *dualtreebimap.SubMap[int, string]) {
	m := dualtreebimap.New[int, string]()
	m.Put(1, "a")
	m.Put(2, "b")
	m.Put(3, "c")
	m.Put(4, "d")
	m.Put(5, "e")

	return m, m.SubMap(container.NewRange(2, true, 4, false), container.FullRange[string]())
}

func TestSubMapRangeFilter(t *testing.T) {
	t.Parallel()

	_, s := ranged()

	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}

	if got, want := s.Keys(), []int{2, 3}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if _, found := s.Get(1); found {
		t.Errorf("Get(1) reported found outside the key range")
	}

	if _, found := s.Get(4); found {
		t.Errorf("Get(4) reported found at the exclusive upper bound")
	}

	if v, found := s.Get(3); v != "c" || !found {
		t.Errorf("Get(3) = (%q, %v), want (c, true)", v, found)
	}
}

func TestSubMapPutOutsideRangeFails(t *testing.T) {
	t.Parallel()

	m, s := ranged()

	if _, _, err := s.Put(5, "x"); !errors.Is(err, container.ErrValueChangeNotAllowed) {
		t.Errorf("Put(5, x) error = %v, want ErrValueChangeNotAllowed", err)
	}

	// The map is unchanged at the point of the failure.
	if v, _ := m.Get(5); v != "e" {
		t.Errorf("Get(5) = %q after refused put, want e", v)
	}

	// A put inside the range goes through to the parent.
	if _, _, err := s.Put(2, "z"); err != nil {
		t.Errorf("Put(2, z) error = %v, want nil", err)
	}

	if v, _ := m.Get(2); v != "z" {
		t.Errorf("Get(2) = %q, want z", v)
	}
}

func TestSubMapPutHiddenEvictionFails(t *testing.T) {
	t.Parallel()

	m, s := ranged()

	// "e" is held by key 5, outside the key range: evicting it through the
	// view is refused.
	if _, _, err := s.Put(3, "e"); !errors.Is(err, container.ErrValueChangeNotAllowed) {
		t.Errorf("Put(3, e) error = %v, want ErrValueChangeNotAllowed", err)
	}

	if v, _ := m.Get(5); v != "e" {
		t.Errorf("Get(5) = %q after refused eviction, want e", v)
	}

	if v, _ := m.Get(3); v != "c" {
		t.Errorf("Get(3) = %q after refused eviction, want c", v)
	}
}

func TestSubMapValueRange(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	m.Put(1, "a")
	m.Put(2, "d")
	m.Put(3, "b")
	m.Put(4, "e")

	// Keys unrestricted, values restricted to [a, c].
	s := m.SubMap(container.FullRange[int](), container.NewRange("a", true, "c", true))

	if got, want := s.Keys(), []int{1, 3}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if got, want := s.Values(), []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	if s.HasValue("d") {
		t.Errorf("HasValue(d) = true outside the value range")
	}

	// Replacing a hidden pair's value through the view is refused.
	if _, _, err := s.Put(2, "c"); !errors.Is(err, container.ErrValueChangeNotAllowed) {
		t.Errorf("Put(2, c) error = %v, want ErrValueChangeNotAllowed", err)
	}
}

func TestSubMapValueContainsChecksKeyRange(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	m.Put(1, "a")
	m.Put(9, "z")

	s := m.SubMap(container.NewRange(1, true, 5, true), container.FullRange[string]())

	// "z" exists in the reverse index, but its key lies outside the range.
	if s.HasValue("z") {
		t.Errorf("HasValue(z) = true for a pair outside the key range")
	}

	if _, found := s.GetKey("z"); found {
		t.Errorf("GetKey(z) reported found for a pair outside the key range")
	}

	if !s.HasValue("a") {
		t.Errorf("HasValue(a) = false for a visible pair")
	}
}

func TestSubMapPolls(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	m.Put(1, "q")
	m.Put(2, "a")
	m.Put(3, "b")
	m.Put(4, "r")

	// Value range hides q and r.
	s := m.SubMap(container.FullRange[int](), container.NewRange("a", true, "c", true))

	// The polled pair satisfies the value range; hidden pairs are skipped, not
	// removed.
	if k, v, found := s.DeleteBegin(); k != 2 || v != "a" || !found {
		t.Errorf("DeleteBegin() = (%d, %q, %v), want (2, a, true)", k, v, found)
	}

	if !m.Has(1) {
		t.Errorf("hidden pair (1, q) was removed by DeleteBegin")
	}

	if k, v, found := s.DeleteEnd(); k != 3 || v != "b" || !found {
		t.Errorf("DeleteEnd() = (%d, %q, %v), want (3, b, true)", k, v, found)
	}

	if !m.Has(4) {
		t.Errorf("hidden pair (4, r) was removed by DeleteEnd")
	}

	if _, _, found := s.DeleteBegin(); found {
		t.Errorf("DeleteBegin() on an emptied view reported found")
	}

	if got := m.Len(); got != 2 {
		t.Errorf("parent Len() = %d, want 2", got)
	}
}

func TestSubMapNavigation(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	for _, k := range []int{1, 2, 3, 4, 5, 6} {
		m.Put(k, string(rune('a'+k)))
	}

	s := m.SubMap(container.NewRange(2, true, 5, true), container.FullRange[string]())

	if k, _, found := s.Begin(); k != 2 || !found {
		t.Errorf("Begin() = (%d, %v), want (2, true)", k, found)
	}

	if k, _, found := s.End(); k != 5 || !found {
		t.Errorf("End() = (%d, %v), want (5, true)", k, found)
	}

	if k, found := s.CeilingKey(1); k != 2 || !found {
		t.Errorf("CeilingKey(1) = (%d, %v), want (2, true)", k, found)
	}

	if k, found := s.FloorKey(9); k != 5 || !found {
		t.Errorf("FloorKey(9) = (%d, %v), want (5, true)", k, found)
	}

	if _, found := s.HigherKey(5); found {
		t.Errorf("HigherKey(5) reported found beyond the range")
	}

	if _, found := s.LowerKey(2); found {
		t.Errorf("LowerKey(2) reported found below the range")
	}

	if k, found := s.HigherKey(3); k != 4 || !found {
		t.Errorf("HigherKey(3) = (%d, %v), want (4, true)", k, found)
	}
}

func TestSubMapCompose(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	for k := 1; k <= 9; k++ {
		m.Put(k, string(rune('a'+k)))
	}

	outer := m.SubMap(container.NewRange(2, true, 8, true), container.FullRange[string]())
	inner := outer.SubMap(container.NewRange(4, true, 9, true), container.FullRange[string]())

	// Composition intersects: [2,8] ∩ [4,9] = [4,8].
	if got, want := inner.Keys(), []int{4, 5, 6, 7, 8}; !slices.Equal(got, want) {
		t.Errorf("composed Keys() = %v, want %v", got, want)
	}

	head := outer.HeadMap(5, false)

	if got, want := head.Keys(), []int{2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("HeadMap Keys() = %v, want %v", got, want)
	}

	tail := outer.TailMap(6, true)

	if got, want := tail.Keys(), []int{6, 7, 8}; !slices.Equal(got, want) {
		t.Errorf("TailMap Keys() = %v, want %v", got, want)
	}
}

func TestSubMapDeleteAndClear(t *testing.T) {
	t.Parallel()

	m, s := ranged()

	// Invisible pairs cannot be removed through the view.
	if _, found := s.Delete(5); found {
		t.Errorf("Delete(5) through the view reported found")
	}

	if m.Len() != 5 {
		t.Errorf("parent Len() = %d after refused delete, want 5", m.Len())
	}

	if v, found := s.Delete(2); v != "b" || !found {
		t.Errorf("Delete(2) = (%q, %v), want (b, true)", v, found)
	}

	s.Clear()

	// Only visible pairs were removed: 3 was visible, 1, 4, 5 were not.
	if got, want := m.Keys(), []int{1, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("parent Keys() after view Clear = %v, want %v", got, want)
	}
}

func TestSubMapPutIfAbsent(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	m.Put(1, "q")
	m.Put(3, "c")
	m.Put(9, "z")

	s := m.SubMap(container.NewRange(1, true, 5, true), container.NewRange("a", true, "m", true))

	// Visible key: no-op.
	if cur, put, err := s.PutIfAbsent(3, "x"); cur != "c" || put || err != nil {
		t.Errorf("PutIfAbsent(3, x) = (%q, %v, %v), want (c, false, nil)", cur, put, err)
	}

	// Key bound to a hidden pair: refused.
	if _, _, err := s.PutIfAbsent(1, "b"); !errors.Is(err, container.ErrValueChangeNotAllowed) {
		t.Errorf("PutIfAbsent(1, b) error = %v, want ErrValueChangeNotAllowed", err)
	}

	// Value held outside the view: refused, no eviction.
	if _, _, err := s.PutIfAbsent(2, "z"); !errors.Is(err, container.ErrValueChangeNotAllowed) {
		t.Errorf("PutIfAbsent(2, z) error = %v, want ErrValueChangeNotAllowed", err)
	}

	if !m.Has(9) {
		t.Errorf("pair (9, z) evicted by refused PutIfAbsent")
	}

	// Free key and value: inserted.
	if cur, put, err := s.PutIfAbsent(2, "b"); cur != "b" || !put || err != nil {
		t.Errorf("PutIfAbsent(2, b) = (%q, %v, %v), want (b, true, nil)", cur, put, err)
	}
}

func TestSubMapIterSequences(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	m.Put(1, "a")
	m.Put(2, "x")
	m.Put(3, "b")
	m.Put(4, "c")

	s := m.SubMap(container.NewRange(1, true, 4, true), container.NewRange("a", true, "c", true))

	var keys []int

	for k := range s.Iter() {
		keys = append(keys, k)
	}

	if want := []int{1, 3, 4}; !slices.Equal(keys, want) {
		t.Errorf("Iter() keys = %v, want %v", keys, want)
	}

	keys = keys[:0]

	for k := range s.RIter() {
		keys = append(keys, k)
	}

	if want := []int{4, 3, 1}; !slices.Equal(keys, want) {
		t.Errorf("RIter() keys = %v, want %v", keys, want)
	}

	if got, want := s.String(), "{1=a, 3=b, 4=c}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
