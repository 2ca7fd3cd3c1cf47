package chaining

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand(seed uint32) *rand.Rand {
	var rndSeed [32]byte
	binary.BigEndian.PutUint32(rndSeed[:], seed)
	return rand.New(rand.NewChaCha8(rndSeed))
}

func TestNewUniversalHash(t *testing.T) {
	t.Run("coefficients within family bounds", func(t *testing.T) {
		rnd := testRand(1009)
		for i := 0; i < 1000; i++ {
			h := NewUniversalHash(64, rnd)
			assert.GreaterOrEqual(t, h.a, uint64(1))
			assert.LessOrEqual(t, h.a, uint64(prime31-1))
			assert.Less(t, h.b, uint64(prime31))
		}
	})

	t.Run("non-positive modulus; should panic", func(t *testing.T) {
		rnd := testRand(1009)
		assert.Panics(t, func() { NewUniversalHash(0, rnd) })
		assert.Panics(t, func() { NewUniversalHash(-8, rnd) })
	})
}

func TestUniversalHashIndex(t *testing.T) {
	t.Run("index within range and stable", func(t *testing.T) {
		rnd := testRand(1009)
		keys := []uint64{0, 1, 5, 19, 1 << 20, prime31 - 1, prime31, math.MaxUint64}

		for _, modulus := range []int{1, 2, 7, 16, 1024} {
			h := NewUniversalHash(modulus, rnd)
			for _, k := range keys {
				idx := h.Index(k)
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, modulus)
				assert.Equal(t, idx, h.Index(k), "repeated call must agree for key %d", k)
			}
		}
	})

	t.Run("matches arbitrary-precision reference", func(t *testing.T) {
		// The a*k product overflows 64 bits for large keys; the reduced
		// result must still be exact.
		rnd := testRand(1009)
		keys := []uint64{0, 1, prime31 - 1, prime31, prime31 + 1, math.MaxUint64 / 3, math.MaxUint64}

		for i := 0; i < 100; i++ {
			h := NewUniversalHash(97, rnd)
			for _, k := range keys {
				want := new(big.Int).SetUint64(h.a)
				want.Mul(want, new(big.Int).SetUint64(k))
				want.Add(want, new(big.Int).SetUint64(h.b))
				want.Mod(want, big.NewInt(prime31))
				want.Mod(want, big.NewInt(97))

				require.Equal(t, int(want.Int64()), h.Index(k), "a=%d b=%d k=%d", h.a, h.b, k)
			}
		}
	})

	t.Run("distinct instances may disagree", func(t *testing.T) {
		rnd := testRand(1009)
		h1 := NewUniversalHash(1024, rnd)
		h2 := NewUniversalHash(1024, rnd)

		differs := false
		for k := uint64(0); k < 100; k++ {
			if h1.Index(k) != h2.Index(k) {
				differs = true
				break
			}
		}
		assert.True(t, differs, "two draws should not produce identical mappings")
	})

	t.Run("modulus accessor", func(t *testing.T) {
		h := NewUniversalHash(42, testRand(1009))
		assert.Equal(t, 42, h.Modulus())
	})
}

func TestKeyFuncs(t *testing.T) {
	assert.Equal(t, uint64(7), IntKey(7))
	assert.Equal(t, uint64(math.MaxUint64), IntKey(-1))
	assert.Equal(t, uint64(19), Uint64Key(19))

	assert.Equal(t, StringKey("value_1"), StringKey("value_1"))
	assert.NotEqual(t, StringKey("value_1"), StringKey("value_2"))
}
