package dice

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// Source is the randomness provider for dice rolls and reward variance.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int

	// Float64 returns a uniformly distributed value in [0.0, 1.0).
	Float64() float64
}

// cryptoSource implements Source using crypto/rand.
//
// Invariant: all values produced are uniformly distributed in their range.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// Float64 returns a cryptographically secure value in [0.0, 1.0).
//
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	// 53 bits of mantissa gives a uniform dyadic in [0, 1).
	return float64(binary.LittleEndian.Uint64(b[:])>>11) / (1 << 53)
}
