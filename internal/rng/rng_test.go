package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The stream values are pinned: changing the hash or generator changes
// every historical room outcome.
func TestStreamGoldenValues(t *testing.T) {
	s := New("abc123")

	want := []float64{
		0.17688569729216397,
		0.41089947219006717,
		0.5834989342838526,
		0.71842310577631,
	}
	for i, w := range want {
		assert.Equal(t, w, s.Float64(), "draw %d", i)
	}
}

func TestStreamDeterminism(t *testing.T) {
	seeds := []string{"", "abc123", "party", "a longer seed string with spaces", "ffffffff"}

	for _, seed := range seeds {
		a := New(seed)
		b := New(seed)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Float64(), b.Float64(), "seed %q draw %d", seed, i)
		}
	}
}

func TestStreamRange(t *testing.T) {
	s := New("range-check")
	for i := 0; i < 10000; i++ {
		v := s.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestStreamSeedsDiverge(t *testing.T) {
	a := New("seed-a")
	b := New("seed-b")

	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	assert.False(t, same, "distinct seeds produced identical streams")
}

func TestIntnBounds(t *testing.T) {
	s := New("intn")
	for i := 0; i < 1000; i++ {
		v := s.Intn(4)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 4)
	}
}
