package dualtreebimap_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/qntx/bidimap/dualtreebimap"
)

func TestMapPutValueCollision(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("a", 2) // evicts ("b", 2) and replaces ("a", 1)

	if got := m.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	if v, found := m.Get("a"); v != 2 || !found {
		t.Errorf("Get(a) = (%d, %v), want (2, true)", v, found)
	}

	if _, found := m.Get("b"); found {
		t.Errorf("Get(b) reported found after eviction")
	}

	if k, found := m.GetKey(2); k != "a" || !found {
		t.Errorf("GetKey(2) = (%q, %v), want (a, true)", k, found)
	}

	if _, found := m.GetKey(1); found {
		t.Errorf("GetKey(1) reported found after replacement")
	}
}

func TestMapPutKeyCollision(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)

	prev, replaced := m.Put("a", 2)
	if prev != 1 || !replaced {
		t.Errorf("Put(a, 2) = (%d, %v), want (1, true)", prev, replaced)
	}

	if got := m.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	if v, _ := m.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d, want 2", v)
	}

	if _, found := m.GetKey(1); found {
		t.Errorf("GetKey(1) reported found after replacement")
	}
}

func TestMapPutIdentityNoOp(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)

	prev, replaced := m.Put("a", 1)
	if prev != 1 || !replaced {
		t.Errorf("Put(a, 1) = (%d, %v), want (1, true)", prev, replaced)
	}

	// An identity put performs no structural change, so a live iterator
	// created before it stays valid.
	it := m.Iterator()
	m.Put("a", 1)

	if !it.Next() {
		t.Errorf("Next() = false after identity put, want true")
	}
}

func TestMapOrderedTraversal(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	if got, want := m.Keys(), []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if got, want := m.Values(), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	var reversed []int

	for k := range m.RIter() {
		reversed = append(reversed, k)
	}

	if want := []int{3, 2, 1}; !slices.Equal(reversed, want) {
		t.Errorf("RIter() keys = %v, want %v", reversed, want)
	}
}

func TestMapDelete(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	if v, found := m.Delete("a"); v != 1 || !found {
		t.Errorf("Delete(a) = (%d, %v), want (1, true)", v, found)
	}

	if _, found := m.Get("a"); found {
		t.Errorf("Get(a) reported found after Delete")
	}

	if _, found := m.GetKey(1); found {
		t.Errorf("GetKey(1) reported found after Delete")
	}

	if k, found := m.DeleteValue(2); k != "b" || !found {
		t.Errorf("DeleteValue(2) = (%q, %v), want (b, true)", k, found)
	}

	if !m.IsEmpty() {
		t.Errorf("IsEmpty() = false after removing all pairs")
	}

	if _, found := m.Delete("missing"); found {
		t.Errorf("Delete(missing) reported found")
	}
}

func TestMapDeleteIf(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)

	if m.DeleteIf("a", 2) {
		t.Errorf("DeleteIf(a, 2) = true, want false")
	}

	if !m.DeleteIf("a", 1) {
		t.Errorf("DeleteIf(a, 1) = false, want true")
	}

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestMapPutIfAbsent(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)

	// Bound key: no-op.
	if cur, put := m.PutIfAbsent("a", 9); cur != 1 || put {
		t.Errorf("PutIfAbsent(a, 9) = (%d, %v), want (1, false)", cur, put)
	}

	// Unbound key, bound value: full put semantics evict the holder.
	if cur, put := m.PutIfAbsent("b", 1); cur != 1 || !put {
		t.Errorf("PutIfAbsent(b, 1) = (%d, %v), want (1, true)", cur, put)
	}

	if _, found := m.Get("a"); found {
		t.Errorf("Get(a) reported found after eviction through PutIfAbsent")
	}

	if k, _ := m.GetKey(1); k != "b" {
		t.Errorf("GetKey(1) = %q, want b", k)
	}
}

func TestMapReplace(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()

	if _, replaced := m.Replace("a", 1); replaced {
		t.Errorf("Replace(a, 1) on empty map reported replaced")
	}

	m.Put("a", 1)

	if old, replaced := m.Replace("a", 2); old != 1 || !replaced {
		t.Errorf("Replace(a, 2) = (%d, %v), want (1, true)", old, replaced)
	}

	if m.ReplaceIf("a", 1, 3) {
		t.Errorf("ReplaceIf(a, 1, 3) = true with current value 2")
	}

	if !m.ReplaceIf("a", 2, 3) {
		t.Errorf("ReplaceIf(a, 2, 3) = false, want true")
	}

	if v, _ := m.Get("a"); v != 3 {
		t.Errorf("Get(a) = %d, want 3", v)
	}
}

func TestMapBijection(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	for i := 0; i < 100; i++ {
		m.Put((i*37)%100, fmt.Sprintf("v%03d", (i*53)%100))
	}

	for k, v := range m.Iter() {
		backKey, found := m.GetKey(v)
		if !found || backKey != k {
			t.Fatalf("GetKey(Get(%d)) = (%d, %v), want (%d, true)", k, backKey, found, k)
		}
	}

	// Size is consistent between both iteration directions.
	if got := len(m.Keys()); got != m.Len() {
		t.Errorf("len(Keys()) = %d, want %d", got, m.Len())
	}

	if got := len(m.Values()); got != m.Len() {
		t.Errorf("len(Values()) = %d, want %d", got, m.Len())
	}
}

func TestMapNavigation(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	for _, k := range []int{2, 4, 6} {
		m.Put(k, fmt.Sprintf("v%d", k))
	}

	tests := []struct {
		name      string
		navigate  func(int) (int, bool)
		key       int
		wantKey   int
		wantFound bool
	}{
		{"Lower", m.LowerKey, 4, 2, true},
		{"Lower min", m.LowerKey, 2, 0, false},
		{"Floor exact", m.FloorKey, 4, 4, true},
		{"Floor between", m.FloorKey, 5, 4, true},
		{"Ceiling exact", m.CeilingKey, 4, 4, true},
		{"Ceiling between", m.CeilingKey, 3, 4, true},
		{"Higher", m.HigherKey, 4, 6, true},
		{"Higher max", m.HigherKey, 6, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, found := tt.navigate(tt.key)
			if found != tt.wantFound || (found && key != tt.wantKey) {
				t.Errorf("%s(%d) = (%d, %v), want (%d, %v)", tt.name, tt.key, key, found, tt.wantKey, tt.wantFound)
			}
		})
	}
}

func TestMapExtremes(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()

	if _, _, found := m.Begin(); found {
		t.Errorf("Begin() on empty map reported found")
	}

	m.Put(2, "b")
	m.Put(1, "c")
	m.Put(3, "a")

	if k, v, _ := m.Begin(); k != 1 || v != "c" {
		t.Errorf("Begin() = (%d, %q), want (1, c)", k, v)
	}

	if k, v, _ := m.End(); k != 3 || v != "a" {
		t.Errorf("End() = (%d, %q), want (3, a)", k, v)
	}

	// Value-side extremes follow the value ordering.
	if k, v, _ := m.BeginValue(); k != 3 || v != "a" {
		t.Errorf("BeginValue() = (%d, %q), want (3, a)", k, v)
	}

	if k, v, _ := m.EndValue(); k != 1 || v != "c" {
		t.Errorf("EndValue() = (%d, %q), want (1, c)", k, v)
	}

	if k, v, found := m.DeleteBegin(); k != 1 || v != "c" || !found {
		t.Errorf("DeleteBegin() = (%d, %q, %v), want (1, c, true)", k, v, found)
	}

	if k, v, found := m.DeleteEnd(); k != 3 || v != "a" || !found {
		t.Errorf("DeleteEnd() = (%d, %q, %v), want (3, a, true)", k, v, found)
	}

	if got := m.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	if _, found := m.GetKey("c"); found {
		t.Errorf("GetKey(c) reported found after DeleteBegin")
	}
}

func TestMapCompute(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)

	// Remap an existing pair.
	if v, kept := m.Compute("a", func(old int, found bool) (int, bool) {
		return old + 10, true
	}); v != 11 || !kept {
		t.Errorf("Compute(a) = (%d, %v), want (11, true)", v, kept)
	}

	// Dropping removes the pair.
	if _, kept := m.Compute("a", func(int, bool) (int, bool) { return 0, false }); kept {
		t.Errorf("Compute(a) drop reported kept")
	}

	if m.Has("a") {
		t.Errorf("Has(a) = true after compute drop")
	}

	// Computing an absent key inserts.
	if v, _ := m.Compute("b", func(old int, found bool) (int, bool) {
		if found {
			t.Errorf("compute closure saw found=true for absent key")
		}

		return 7, true
	}); v != 7 {
		t.Errorf("Compute(b) = %d, want 7", v)
	}
}

func TestMapComputeVariants(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()

	if v, _ := m.ComputeIfAbsent("a", func(string) int { return 1 }); v != 1 {
		t.Errorf("ComputeIfAbsent(a) = %d, want 1", v)
	}

	// Present key is untouched.
	if v, _ := m.ComputeIfAbsent("a", func(string) int { return 99 }); v != 1 {
		t.Errorf("ComputeIfAbsent(a) second call = %d, want 1", v)
	}

	if _, found := m.ComputeIfPresent("missing", func(string, int) (int, bool) { return 0, true }); found {
		t.Errorf("ComputeIfPresent(missing) reported found")
	}

	if v, _ := m.ComputeIfPresent("a", func(_ string, old int) (int, bool) { return old * 2, true }); v != 2 {
		t.Errorf("ComputeIfPresent(a) = %d, want 2", v)
	}

	if v, _ := m.Merge("a", 5, func(old, given int) (int, bool) { return old + given, true }); v != 7 {
		t.Errorf("Merge(a, 5) = %d, want 7", v)
	}

	if v, _ := m.Merge("b", 3, nil); v != 3 {
		t.Errorf("Merge(b, 3) on absent key = %d, want 3", v)
	}

	if _, kept := m.Merge("b", 1, func(int, int) (int, bool) { return 0, false }); kept {
		t.Errorf("Merge(b) drop reported kept")
	}

	if m.Has("b") {
		t.Errorf("Has(b) = true after merge drop")
	}
}

func TestMapComputeClosureMutationPanics(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when compute closure mutates the map")
		}
	}()

	m.Compute("a", func(old int, found bool) (int, bool) {
		m.Put("b", 2) // forbidden structural change

		return old, true
	})
}

func TestMapNilArgumentPanics(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.NewWith[*int, string](
		func(a, b *int) int { return *a - *b },
		func(a, b string) int {
			if a < b {
				return -1
			} else if a > b {
				return 1
			}

			return 0
		},
	)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on nil key")
		}
	}()

	m.Put(nil, "x")
}

func TestMapEqualAndHash(t *testing.T) {
	t.Parallel()

	a := dualtreebimap.New[string, int]()
	b := dualtreebimap.New[string, int]()

	// Same pairs inserted in different orders.
	a.Put("x", 1)
	a.Put("y", 2)
	b.Put("y", 2)
	b.Put("x", 1)

	if !a.Equal(b) {
		t.Errorf("Equal() = false for maps with identical pairs")
	}

	if a.Hash() != b.Hash() {
		t.Errorf("Hash() differs for equal maps: %d vs %d", a.Hash(), b.Hash())
	}

	b.Put("z", 3)

	if a.Equal(b) {
		t.Errorf("Equal() = true for maps of different size")
	}

	b.Delete("z")
	b.Put("x", 9)

	if a.Equal(b) {
		t.Errorf("Equal() = true for maps with different values")
	}
}

func TestMapClone(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	c := m.Clone()

	if !m.Equal(c) {
		t.Errorf("Clone() is not equal to the original")
	}

	c.Put("c", 3)

	if m.Has("c") {
		t.Errorf("original observed mutation of the clone")
	}
}

func TestMapString(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	m.Put(2, "b")
	m.Put(1, "a")

	if got, want := m.String(), "{1=a, 2=b}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := dualtreebimap.New[int, string]().String(), "{}"; got != want {
		t.Errorf("String() on empty map = %q, want %q", got, want)
	}
}

func TestMapEnumerable(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[int, string]()
	m.Put(1, "a")
	m.Put(2, "b")
	m.Put(3, "c")

	count := 0

	m.Each(func(int, string) { count++ })

	if count != 3 {
		t.Errorf("Each visited %d pairs, want 3", count)
	}

	if !m.Any(func(k int, _ string) bool { return k == 2 }) {
		t.Errorf("Any(k==2) = false, want true")
	}

	if m.All(func(k int, _ string) bool { return k < 3 }) {
		t.Errorf("All(k<3) = true, want false")
	}

	if k, v := m.Find(func(_ int, v string) bool { return v == "b" }); k != 2 || v != "b" {
		t.Errorf("Find(v==b) = (%d, %q), want (2, b)", k, v)
	}
}

func TestMapPutAllAndConstructors(t *testing.T) {
	t.Parallel()

	src := dualtreebimap.New[int, string]()
	src.Put(1, "a")
	src.Put(2, "b")

	m := dualtreebimap.NewFromSeq(src.Iter())

	if !m.Equal(src) {
		t.Errorf("NewFromSeq() does not equal the source")
	}

	fromMap := dualtreebimap.NewFrom(map[int]string{1: "a", 2: "b"})

	if !fromMap.Equal(src) {
		t.Errorf("NewFrom() does not equal the source")
	}
}

func TestMapClear(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	m.Clear()

	if !m.IsEmpty() || m.Len() != 0 {
		t.Errorf("Clear() left the map non-empty")
	}

	if _, found := m.GetKey(1); found {
		t.Errorf("GetKey(1) reported found after Clear")
	}
}
