package chaining

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	// DefaultCapacity is the initial bucket count used by NewDefault.
	DefaultCapacity = 16
	// DefaultMaxLoadFactor is the growth threshold used by NewDefault.
	DefaultMaxLoadFactor = 0.75

	minLoadFactor = 0.25 // deletions below this trigger a shrink
	capacityFloor = 16   // shrinking never goes below this many buckets
)

// NewDefault creates a new hash table with default parameters.
func NewDefault[K comparable, V any](keyFn KeyFunc[K]) *HashTable[K, V] {
	return New[K, V](keyFn, DefaultCapacity, DefaultMaxLoadFactor)
}

// New creates a new hash table with the given initial bucket count and
// growth threshold. Hash coefficients are drawn from a time-seeded source;
// use NewWithRand for reproducible bucket layouts.
//
// keyFn maps keys to the hashed integer universe, see KeyFunc.
// initialCapacity must be positive. maxLoadFactor must be positive; values
// above 1 are allowed and simply let chains grow longer before a resize.
func New[K comparable, V any](keyFn KeyFunc[K], initialCapacity int, maxLoadFactor float64) *HashTable[K, V] {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(time.Now().UnixNano()))
	return NewWithRand[K, V](keyFn, initialCapacity, maxLoadFactor, rand.New(rand.NewChaCha8(seed)))
}

// NewWithRand is New with an explicit coefficient source. The table keeps
// rnd and draws from it again on every resize.
func NewWithRand[K comparable, V any](keyFn KeyFunc[K], initialCapacity int, maxLoadFactor float64, rnd *rand.Rand) *HashTable[K, V] {
	if keyFn == nil {
		panic(fmt.Errorf("keyFn must not be nil"))
	}
	if initialCapacity <= 0 {
		panic(fmt.Errorf("initialCapacity must be positive"))
	}
	if maxLoadFactor <= 0 {
		panic(fmt.Errorf("maxLoadFactor must be positive"))
	}
	return &HashTable[K, V]{
		keyFn:         keyFn,
		rnd:           rnd,
		hashFn:        NewUniversalHash(initialCapacity, rnd),
		buckets:       make([][]entry[K, V], initialCapacity),
		maxLoadFactor: maxLoadFactor,
	}
}

// HashTable is a chained hash table with per-instance universal hashing.
// Chains hold unique keys, so a key occurs at most once in the whole table.
//
// The zero value is not usable; construct instances with New, NewDefault or
// NewWithRand. Not safe for concurrent use.
type HashTable[K comparable, V any] struct {
	keyFn         KeyFunc[K]
	rnd           *rand.Rand
	hashFn        UniversalHash // always bound to len(buckets)
	buckets       [][]entry[K, V]
	size          int
	maxLoadFactor float64

	collisions int // cumulative appends to non-empty chains, rehash included
	resizes    int // cumulative grow and shrink count
}

// Set maps key to value, inserting or updating. If the load factor has
// reached the maximum before placement, the table first doubles its bucket
// count and rehashes everything through a freshly drawn hash function.
func (t *HashTable[K, V]) Set(key K, value V) {
	if t.LoadFactor() >= t.maxLoadFactor {
		t.rehash(len(t.buckets) * 2)
	}
	if t.setNoGrow(key, value) {
		t.size++
	}
}

// Get returns the value stored for key. If the key does not exist, it
// returns the zero value and false. Get never mutates the table.
func (t *HashTable[K, V]) Get(key K) (V, bool) {
	idx := t.hashFn.Index(t.keyFn(key))
	for _, e := range t.buckets[idx] {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present. When a removal
// drops the load factor below 0.25 and the bucket count still exceeds the
// floor of 16, the table halves its bucket count and rehashes. A delete
// that empties the table deliberately skips the shrink, so a fully drained
// table keeps its current capacity.
func (t *HashTable[K, V]) Delete(key K) bool {
	idx := t.hashFn.Index(t.keyFn(key))
	chain := t.buckets[idx]
	for i := range chain {
		if chain[i].key != key {
			continue
		}
		t.buckets[idx] = append(chain[:i], chain[i+1:]...)
		t.size--
		if t.size > 0 && t.LoadFactor() < minLoadFactor && len(t.buckets) > capacityFloor {
			t.rehash(len(t.buckets) / 2)
		}
		return true
	}
	return false
}

// Len returns the number of keys in the hash table.
func (t *HashTable[K, V]) Len() int {
	return t.size
}

// Cap returns the current bucket count of the hash table.
func (t *HashTable[K, V]) Cap() int {
	return len(t.buckets)
}

// LoadFactor returns Len divided by Cap.
func (t *HashTable[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Statistics is a point-in-time snapshot of the table layout and its
// cumulative counters. Collisions counts every append to a non-empty chain
// since construction, rehash traffic included; Resizes counts grows and
// shrinks. Neither counter is ever reset.
type Statistics struct {
	Size            int
	Capacity        int
	LoadFactor      float64
	Collisions      int
	Resizes         int
	MaxChainLength  int
	AvgChainLength  float64 // mean over all buckets, empty ones included
	NonEmptyBuckets int
	EmptyBuckets    int
}

// Stats collects a Statistics snapshot. Purely a read.
func (t *HashTable[K, V]) Stats() Statistics {
	var maxChain, nonEmpty int
	for _, chain := range t.buckets {
		if len(chain) > maxChain {
			maxChain = len(chain)
		}
		if len(chain) > 0 {
			nonEmpty++
		}
	}
	return Statistics{
		Size:            t.size,
		Capacity:        len(t.buckets),
		LoadFactor:      t.LoadFactor(),
		Collisions:      t.collisions,
		Resizes:         t.resizes,
		MaxChainLength:  maxChain,
		AvgChainLength:  float64(t.size) / float64(len(t.buckets)),
		NonEmptyBuckets: nonEmpty,
		EmptyBuckets:    len(t.buckets) - nonEmpty,
	}
}

// String dumps the non-empty buckets for debugging, one bucket per line.
func (t *HashTable[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("HashTable:")
	empty := true
	for i, chain := range t.buckets {
		if len(chain) == 0 {
			continue
		}
		empty = false
		fmt.Fprintf(&sb, "\n  bucket %d:", i)
		for _, e := range chain {
			fmt.Fprintf(&sb, " (%v, %v)", e.key, e.value)
		}
	}
	if empty {
		sb.WriteString(" (empty)")
	}
	return sb.String()
}
