package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		// Given: known identity keys
		// Then: the FNV-1a hash of "bingo:"+key matches the reference value
		require.Equal(t, uint32(3576710338), Seed("alice"))
		require.Equal(t, uint32(384066333), Seed("bob"))
		require.Equal(t, uint32(283107538), Seed(""))
	})

	t.Run("Stable across calls", func(t *testing.T) {
		// When: hashing the same key twice
		// Then: both calls return the same seed
		require.Equal(t, Seed("carol"), Seed("carol"))
	})

	t.Run("Different keys differ", func(t *testing.T) {
		// Then: distinct keys map to distinct seeds
		assert.NotEqual(t, Seed("alice"), Seed("bob"))
	})
}

func TestSeededSource(t *testing.T) {
	t.Run("Values stay in range", func(t *testing.T) {
		// Given: a seeded source
		src := NewSeededSource(Seed("alice"))

		// Then: every value lands in [0, 1)
		for i := 0; i < 1000; i++ {
			val := src.Float64()
			require.GreaterOrEqual(t, val, 0.0)
			require.Less(t, val, 1.0)
		}
	})

	t.Run("Same seed same stream", func(t *testing.T) {
		// Given: two sources built from the same seed
		first := NewSeededSource(42)
		second := NewSeededSource(42)

		// Then: they produce identical streams
		for i := 0; i < 100; i++ {
			require.Equal(t, first.Float64(), second.Float64()) //nolint: testifylint // streams must be bit-identical
		}
	})

	t.Run("Zero seed does not collapse", func(t *testing.T) {
		// Given: a source seeded with zero
		src := NewSeededSource(0)

		// Then: the stream still produces non-zero values
		sum := 0.0
		for i := 0; i < 10; i++ {
			sum += src.Float64()
		}
		assert.Positive(t, sum)
	})
}
