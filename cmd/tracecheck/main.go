package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"tracecheck"
	"tracecheck/config"

	"github.com/caarlos0/env/v11"
)

// Runs checking sessions of a small token bucket model and prints the
// reports. The bucket refill deliberately misses the clamp to the burst
// size, so sessions regularly find a counterexample.

type settings struct {
	Seed     int64 `env:"TRACECHECK_SEED"`
	Steps    int   `env:"TRACECHECK_STEPS" envDefault:"50"`
	Sessions int   `env:"TRACECHECK_SESSIONS" envDefault:"10"`
}

type bucket struct {
	Tokens int
	Burst  int
}

type bucketStep struct {
	// Tokens added to the bucket; zero means take one token instead
	Refill int
}

func (bucket) Generate(rng *rand.Rand) bucket { return bucket{Burst: 10} }

func (b *bucket) Clone() bucket { return *b }

func (b *bucket) Apply(step bucketStep) {
	if step.Refill > 0 {
		// Missing the clamp to the burst size
		b.Tokens += step.Refill
	} else if b.Tokens > 0 {
		b.Tokens--
	}
	if b.Tokens > b.Burst {
		panic(fmt.Sprintf("bucket overflowed: %v tokens with a burst of %v", b.Tokens, b.Burst))
	}
}

func (bucketStep) Generate(rng *rand.Rand) bucketStep {
	return bucketStep{Refill: rng.Intn(4)}
}

func (s bucketStep) Clone() bucketStep { return s }

func main() {
	logger := log.New(os.Stderr, "tracecheck: ", 0)

	var cfg settings
	if err := env.Parse(&cfg); err != nil {
		logger.Fatalf("parsing the environment: %v", err)
	}

	opts := []config.CheckerOption{}
	if cfg.Seed != 0 {
		opts = append(opts, tracecheck.WithSeed(cfg.Seed))
	}
	checker := tracecheck.NewChecker[bucket, bucketStep, *bucket](opts...)

	failures := 0
	for i := 0; i < cfg.Sessions; i++ {
		rep := checker.RunSession(cfg.Steps)
		if ok, desc := rep.Response(); !ok {
			failures++
			fmt.Println(desc)
		}
	}
	logger.Printf("ran %v sessions with a budget of %v steps, %v found a counterexample", cfg.Sessions, cfg.Steps, failures)
	if failures > 0 {
		os.Exit(1)
	}
}
