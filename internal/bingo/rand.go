package bingo

import (
	"hash/fnv"
	"math/rand"
	"time"
)

const seedPrefix = "bingo:"

// Source yields uniformly distributed floats in [0, 1). Board generation
// takes it as an explicit dependency so tests can pin the stream.
type Source interface {
	Float64() float64
}

// Seed derives a 32-bit FNV-1a hash from "bingo:" + identityKey. The same
// identity key always maps to the same seed, which is what makes boards
// reproducible across restarts.
func Seed(identityKey string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(seedPrefix + identityKey)) //nolint: errcheck // never fails

	return h.Sum32()
}

// xorshift is a 32-bit xorshift generator. State must never be zero or the
// stream collapses to all zeroes.
type xorshift struct {
	state uint32
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed uint32) Source {
	if seed == 0 {
		seed = 2166136261
	}

	return &xorshift{state: seed}
}

func (that *xorshift) Float64() float64 {
	that.state ^= that.state << 13
	that.state ^= that.state >> 17
	that.state ^= that.state << 5

	return float64(that.state) / (1 << 32)
}

// NewRandomSource returns a time-seeded Source with no reproducibility
// guarantee.
func NewRandomSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // not used for secrets
}
