package dualtreebimap_test

import (
	"testing"

	"github.com/qntx/bidimap/dualtreebimap"
	"github.com/qntx/bidimap/internal/testutil"
)

func benchmarkGet(b *testing.B, m *dualtreebimap.Map[int, int], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Get(key)
		}
	}
}

func benchmarkPut(b *testing.B, m *dualtreebimap.Map[int, int], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Put(key, key)
		}
	}
}

func benchmarkDelete(b *testing.B, m *dualtreebimap.Map[int, int], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Delete(key)
		}
	}
}

func populated(size int) (*dualtreebimap.Map[int, int], []int) {
	m := dualtreebimap.New[int, int]()
	keys := testutil.GeneratePermutedInts(size)

	for _, key := range keys {
		m.Put(key, key)
	}

	return m, keys
}

func BenchmarkDualTreeBiMapGet100(b *testing.B) {
	b.StopTimer()

	m, keys := populated(100)

	b.StartTimer()
	benchmarkGet(b, m, keys)
}

func BenchmarkDualTreeBiMapGet10000(b *testing.B) {
	b.StopTimer()

	m, keys := populated(10000)

	b.StartTimer()
	benchmarkGet(b, m, keys)
}

func BenchmarkDualTreeBiMapPut100(b *testing.B) {
	b.StopTimer()

	m := dualtreebimap.New[int, int]()
	keys := testutil.GeneratePermutedInts(100)

	b.StartTimer()
	benchmarkPut(b, m, keys)
}

func BenchmarkDualTreeBiMapPut10000(b *testing.B) {
	b.StopTimer()

	m := dualtreebimap.New[int, int]()
	keys := testutil.GeneratePermutedInts(10000)

	b.StartTimer()
	benchmarkPut(b, m, keys)
}

func BenchmarkDualTreeBiMapDelete100(b *testing.B) {
	b.StopTimer()

	m, keys := populated(100)

	b.StartTimer()
	benchmarkDelete(b, m, keys)
}

func BenchmarkDualTreeBiMapDelete10000(b *testing.B) {
	b.StopTimer()

	m, keys := populated(10000)

	b.StartTimer()
	benchmarkDelete(b, m, keys)
}
