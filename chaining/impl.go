package chaining

type entry[K comparable, V any] struct {
	key   K
	value V
}

// setNoGrow places a key-value pair without the load factor check and
// reports whether a new key was added rather than an existing one updated.
// Both Set and rehash funnel through here; rehash relies on the bucket
// count staying fixed for the duration of the call.
func (t *HashTable[K, V]) setNoGrow(key K, value V) bool {
	idx := t.hashFn.Index(t.keyFn(key))
	chain := t.buckets[idx]
	for i := range chain {
		if chain[i].key == key {
			chain[i].value = value
			return false
		}
	}
	if len(chain) > 0 {
		t.collisions++
	}
	t.buckets[idx] = append(chain, entry[K, V]{key: key, value: value})
	return true
}

// rehash replaces the bucket array with newCapacity empty chains, draws a
// new hash function bound to it and reinserts every entry. Reinsertion goes
// through the regular chain-append path, so collisions met here still feed
// the cumulative counter. The size is untouched: setNoGrow only reports
// additions and every reinserted key is distinct.
func (t *HashTable[K, V]) rehash(newCapacity int) {
	t.resizes++
	old := t.buckets
	t.buckets = make([][]entry[K, V], newCapacity)
	t.hashFn = NewUniversalHash(newCapacity, t.rnd)
	for _, chain := range old {
		for _, e := range chain {
			t.setNoGrow(e.key, e.value)
		}
	}
}
