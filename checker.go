package tracecheck

import (
	"math/rand"
	"time"

	"tracecheck/config"
	"tracecheck/recorder"

	"golang.org/x/exp/slices"
)

// Checks a model by generating a random initial state and a random step
// sequence, executing the sequence while trapping invariant violations, and
// minimizing a failing sequence to a smaller counterexample.
//
// The Checker owns its generator handle. It is not safe for concurrent use;
// run sessions from a single goroutine at a time.
type Checker[S any, T Step[T], PS Model[S, T]] struct {
	rng *rand.Rand
}

// Create a new Checker for the model.
//
// See the CheckerOptions for a full overview of possible options.
// By default the generator handle is seeded from the wall clock, making
// sessions non-reproducible. Use WithSeed to make sessions reproducible.
func NewChecker[S any, T Step[T], PS Model[S, T]](opts ...config.CheckerOption) *Checker[S, T, PS] {
	var rng *rand.Rand
	for _, opt := range opts {
		switch t := opt.(type) {
		case config.SeedOption:
			rng = rand.New(rand.NewSource(t.Seed))
		case config.RandOption:
			rng = t.Rng
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Checker[S, T, PS]{rng: rng}
}

// RunSession executes one checking session with the provided step budget.
//
// The session generates one initial state and maxSteps step values, then
// executes the sequence against a clone of the initial state. If the full
// sequence completes without a failure the session succeeds immediately.
// Otherwise the sequence is truncated at the failing step and minimized with
// a single greedy left to right removal pass. Shrinking re-runs candidates
// against fresh clones of the same initial state; neither the state nor the
// surviving steps are ever re-generated.
//
// RunSession never panics and always returns a report. With maxSteps of zero
// the candidate sequence is empty and the session trivially succeeds.
//
// The minimized sequence is not guaranteed to be globally minimal: removals
// are attempted once per element of the truncated sequence, and a shorter
// counterexample reachable only through a second pass or non-adjacent
// removals is not pursued.
func (c *Checker[S, T, PS]) RunSession(maxSteps int) *Report[S, T] {
	if maxSteps < 0 {
		maxSteps = 0
	}
	var (
		zeroState S
		zeroStep  T
	)
	initial := PS(&zeroState).Generate(c.rng)
	steps := make([]T, 0, maxSteps)
	for i := 0; i < maxSteps; i++ {
		steps = append(steps, zeroStep.Generate(c.rng))
	}

	rec := recorder.New()
	out := runTrial[S, T, PS](initial, steps)
	rec.Trial(out.failed, out.msg)
	if !out.failed {
		return &Report[S, T]{Result: true, State: initial, Stats: rec.End(0)}
	}

	// Steps after the failing one were never applied and cannot have
	// contributed to the failure.
	steps = steps[:out.applied]
	rec.Truncated(len(steps))

	msg := out.msg
	cursor := 0
	// One greedy pass. The number of removal attempts is fixed to the
	// truncated length and is not recomputed as the sequence shrinks.
	for i, n := 0, len(steps); i < n; i++ {
		if cursor >= len(steps) {
			break
		}
		candidate := slices.Delete(slices.Clone(steps), cursor, cursor+1)
		res := runTrial[S, T, PS](initial, candidate)
		rec.Trial(res.failed, res.msg)
		if res.failed {
			// The failure reproduces without the removed step, on any step.
			// Keep the shorter sequence. The cursor stays put since the next
			// element has shifted into its position.
			steps = candidate
			msg = res.msg
		} else {
			cursor++
		}
	}

	return &Report[S, T]{
		State: initial,
		Steps: steps,
		Err:   msg,
		Stats: rec.End(len(steps)),
	}
}
