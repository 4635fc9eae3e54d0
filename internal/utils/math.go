package utils

import (
	crand "crypto/rand"
	"math"
	"math/big"
	"math/rand/v2"
)

// SecureRandomIndex returns a uniform index in [0, n) using crypto/rand.
// It falls back to math/rand if the system source fails.
func SecureRandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
	}
	return int(v.Int64())
}

// ClampInt64 bounds v to [lo, hi]
func ClampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundToInt64 rounds half away from zero
func RoundToInt64(f float64) int64 {
	return int64(math.Round(f))
}

// FloorToInt64 truncates towards negative infinity
func FloorToInt64(f float64) int64 {
	return int64(math.Floor(f))
}
