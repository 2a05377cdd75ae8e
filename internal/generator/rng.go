package generator

import (
	"math/rand"
	"time"
)

// RNG is the randomness source behind shuffles and probabilistic branch
// selection. It is the only source of non-determinism in the engine;
// tests inject a seeded instance to force reproducible output.
type RNG interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRNG returns a seeded RNG. *rand.Rand's Shuffle is a Fisher-Yates
// permutation, which is exactly what option shuffling requires.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// NewSystemRNG returns an RNG seeded from the wall clock, the production
// default.
func NewSystemRNG() RNG {
	return NewRNG(time.Now().UnixNano())
}
