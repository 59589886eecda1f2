// Package rng provides the seeded pseudo-random stream behind the wheel
// draw. The generator is part of the room's audit contract: the same seed
// string must yield the same stream on every platform, forever, so the
// xmur3 hash and mulberry32 stream are fixed-width 32-bit constructions
// rather than anything from math/rand.
package rng

// Stream is a deterministic pseudo-random number stream
type Stream struct {
	state uint32
}

// hashSeed mixes a seed string down to a 32-bit state (xmur3)
func hashSeed(seed string) uint32 {
	h := uint32(1779033703) ^ uint32(len(seed))
	for i := 0; i < len(seed); i++ {
		h = (h ^ uint32(seed[i])) * 3432918353
		h = (h << 13) | (h >> 19)
	}
	h = (h ^ (h >> 16)) * 2246822507
	h = (h ^ (h >> 13)) * 3266489909
	h ^= h >> 16
	return h
}

// New derives a deterministic stream from a seed string
func New(seed string) *Stream {
	return &Stream{state: hashSeed(seed)}
}

// Float64 returns the next value in [0, 1) (mulberry32)
func (s *Stream) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// Intn returns the next value as an integer in [0, n)
func (s *Stream) Intn(n int) int {
	return int(s.Float64() * float64(n))
}
