package defender

import "math/rand"

// Source supplies uniform values in [0, 1).
// Spawn rolls, spawn positions and the starfield all draw from a Source so
// tests can pin them down.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
