package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// SeededRandom implements Random with a fixed-seed PRNG, giving reproducible
// guess sequences for replayable games and deterministic tests
type SeededRandom struct {
	rng *mathrand.Rand
}

// NewSeeded creates a SeededRandom from the given seed
func NewSeeded(seed int64) *SeededRandom {
	return &SeededRandom{rng: mathrand.New(mathrand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}
