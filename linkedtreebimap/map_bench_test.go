package linkedtreebimap_test

import (
	"testing"

	"github.com/qntx/bidimap/internal/testutil"
	"github.com/qntx/bidimap/linkedtreebimap"
)

func benchmarkGet(b *testing.B, m *linkedtreebimap.Map[int, int], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Get(key)
		}
	}
}

func benchmarkPut(b *testing.B, m *linkedtreebimap.Map[int, int], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Put(key, key)
		}
	}
}

func benchmarkDelete(b *testing.B, m *linkedtreebimap.Map[int, int], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Delete(key)
		}
	}
}

func populated(size int) (*linkedtreebimap.Map[int, int], []int) {
	m := linkedtreebimap.New[int, int]()
	keys := testutil.GeneratePermutedInts(size)

	for _, key := range keys {
		m.Put(key, key)
	}

	return m, keys
}

func BenchmarkLinkedTreeBiMapGet100(b *testing.B) {
	b.StopTimer()

	m, keys := populated(100)

	b.StartTimer()
	benchmarkGet(b, m, keys)
}

func BenchmarkLinkedTreeBiMapGet10000(b *testing.B) {
	b.StopTimer()

	m, keys := populated(10000)

	b.StartTimer()
	benchmarkGet(b, m, keys)
}

func BenchmarkLinkedTreeBiMapPut100(b *testing.B) {
	b.StopTimer()

	m := linkedtreebimap.New[int, int]()
	keys := testutil.GeneratePermutedInts(100)

	b.StartTimer()
	benchmarkPut(b, m, keys)
}

func BenchmarkLinkedTreeBiMapPut10000(b *testing.B) {
	b.StopTimer()

	m := linkedtreebimap.New[int, int]()
	keys := testutil.GeneratePermutedInts(10000)

	b.StartTimer()
	benchmarkPut(b, m, keys)
}

func BenchmarkLinkedTreeBiMapDelete100(b *testing.B) {
	b.StopTimer()

	m, keys := populated(100)

	b.StartTimer()
	benchmarkDelete(b, m, keys)
}

func BenchmarkLinkedTreeBiMapDelete10000(b *testing.B) {
	b.StopTimer()

	m, keys := populated(10000)

	b.StartTimer()
	benchmarkDelete(b, m, keys)
}
