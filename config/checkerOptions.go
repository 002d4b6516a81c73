package config

import "math/rand"

// An option used to configure a Checker
type CheckerOption interface {
	// noop method
	ChkOpt()
}

// Seed the generator handle of the Checker for reproducible sessions
type SeedOption struct{ Seed int64 }

func (so SeedOption) ChkOpt() {}

// Provide the generator handle used by the Checker
type RandOption struct{ Rng *rand.Rand }

func (ro RandOption) ChkOpt() {}
