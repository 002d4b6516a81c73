package tracecheck

import (
	"math/rand"

	"tracecheck/config"
)

// Seed the checker's generator handle.
//
// Two checkers created with the same seed generate identical states and step
// sequences, making sessions reproducible.
func WithSeed(seed int64) config.CheckerOption {
	return config.SeedOption{Seed: seed}
}

// Use the provided generator handle instead of creating a new one.
//
// The handle is exclusively owned by the checker for its lifetime and must
// not be shared with concurrent users.
func WithRand(rng *rand.Rand) config.CheckerOption {
	return config.RandOption{Rng: rng}
}
