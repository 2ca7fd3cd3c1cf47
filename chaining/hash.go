package chaining

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

const prime31 = 1<<31 - 1 // Mersenne prime 2^31-1, exceeds the 31-bit key universe

// KeyFunc maps a key to an integer for hashing. It must return the same
// integer for the same key for the lifetime of the process, otherwise keys
// placed by Set become unreachable for Get and Delete.
type KeyFunc[K comparable] func(K) uint64

// IntKey uses an int key's two's complement bit pattern directly.
func IntKey(k int) uint64 { return uint64(k) }

// Uint64Key uses a uint64 key directly.
func Uint64Key(k uint64) uint64 { return k }

// StringKey digests a string key with xxhash.
func StringKey(k string) uint64 { return xxhash.Sum64String(k) }

// UniversalHash is a hash function drawn from the universal family
// h(k) = ((a*k + b) mod p) mod m with a ∈ [1, p-1] and b ∈ [0, p-1].
// A value is immutable once drawn; a different output range requires
// drawing a new one.
type UniversalHash struct {
	a, b    uint64
	modulus uint64
}

// NewUniversalHash draws a hash function with output range [0, modulus)
// using coefficients from rnd.
func NewUniversalHash(modulus int, rnd *rand.Rand) UniversalHash {
	if modulus <= 0 {
		panic(fmt.Errorf("modulus must be positive"))
	}
	return UniversalHash{
		a:       1 + rnd.Uint64N(prime31-1),
		b:       rnd.Uint64N(prime31),
		modulus: uint64(modulus),
	}
}

// Index returns the bucket index for an integer key. The product a*k does
// not fit in 64 bits for large keys, so it is reduced mod p through a
// 128-bit intermediate rather than truncated.
func (h UniversalHash) Index(k uint64) int {
	hi, lo := bits.Mul64(h.a, k)
	r := bits.Rem64(hi, lo, prime31)
	return int((r + h.b) % prime31 % h.modulus)
}

// Modulus returns the size of the output range.
func (h UniversalHash) Modulus() int {
	return int(h.modulus)
}
