package dice

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source is the randomness provider for live dice.
type Source interface {
	// IntN returns a random int in [0, n). n must be positive.
	IntN(n int) int
}

// CryptoSource draws strongly uniform values from crypto/rand.
type CryptoSource struct{}

// IntN implements Source.
func (CryptoSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms
		panic("dice: crypto source unavailable: " + err.Error())
	}
	return int(v.Int64())
}

// NewSeededSource returns a reproducible source for tests and replays.
// It is not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceSource replays a fixed list of face values (1-based) and then
// wraps around. Values are clamped into [0, n) when drawn.
type SequenceSource struct {
	values []int
	pos    int
}

// NewSequenceSource prepares a deterministic sequence of face values.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// IntN implements Source.
func (s *SequenceSource) IntN(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)] - 1
	s.pos++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
