// Package dualtreebimap provides Ruby-inspired enumerable functions over the map.
package dualtreebimap

// Each invokes the given function once for each pair, in ascending key order.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for k, v := range m.Iter() {
		fn(k, v)
	}
}

// Any returns true if the function returns true for at least one pair.
//
// Stops iterating as soon as a match is found.
func (m *Map[K, V]) Any(fn func(key K, value V) bool) bool {
	for k, v := range m.Iter() {
		if fn(k, v) {
			return true
		}
	}

	return false
}

// All returns true if the function returns true for every pair.
//
// Stops and returns false on the first failure.
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
