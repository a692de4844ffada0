package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source is the randomness contract the maze algorithms rely on: uniform,
// independent draws in [0, n).
type Source interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewSecureRNG creates a ChaCha8 stream keyed from the operating system's
// cryptographic randomness. Mazes built from it are not reproducible.
func NewSecureRNG() *RNG {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// Fall back to the runtime-seeded global source.
		binary.LittleEndian.PutUint64(seed[:8], rand.Uint64())
		binary.LittleEndian.PutUint64(seed[8:16], rand.Uint64())
		binary.LittleEndian.PutUint64(seed[16:24], rand.Uint64())
		binary.LittleEndian.PutUint64(seed[24:], rand.Uint64())
	}
	return &RNG{r: rand.New(rand.NewChaCha8(seed))}
}

// IntN returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Shuffle permutes n elements with Fisher-Yates, drawing from src.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		swap(i, j)
	}
}

// Sequence replays a fixed list of draws, wrapping around when exhausted.
// Each value is reduced modulo the requested bound, so a Sequence of zeros
// always picks the first candidate.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence returns a Sequence cycling through values. An empty sequence
// always yields 0.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// IntN returns the next value of the sequence reduced into [0, n).
func (s *Sequence) IntN(n int) int {
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int { return s.pos }
