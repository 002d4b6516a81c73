package tracecheck

import (
	"errors"
	"math/rand"
)

// Create some dummy models for use when testing

// A step carrying a small random number
type numStep struct{ N int }

func (numStep) Generate(rng *rand.Rand) numStep { return numStep{N: rng.Intn(10)} }

func (s numStep) Clone() numStep { return s }

// A model whose invariant can never be violated
type calm struct{ applied int }

func (calm) Generate(rng *rand.Rand) calm { return calm{} }

func (c *calm) Clone() calm { return *c }

func (c *calm) Apply(step numStep) { c.applied++ }

// A model that fails as soon as the third step is applied, regardless of the
// step values
type third struct{ applied int }

func (third) Generate(rng *rand.Rand) third { return third{} }

func (t *third) Clone() third { return *t }

func (t *third) Apply(step numStep) {
	t.applied++
	if t.applied >= 3 {
		panic("applied three steps")
	}
}

// A model that fails on the first step with an error payload
type grumpy struct{}

func (grumpy) Generate(rng *rand.Rand) grumpy { return grumpy{} }

func (g *grumpy) Clone() grumpy { return *g }

func (g *grumpy) Apply(step numStep) { panic(errors.New("grumpy node")) }

// A model that fails on the first step with an unreadable payload
type opaque struct{}

func (opaque) Generate(rng *rand.Rand) opaque { return opaque{} }

func (o *opaque) Clone() opaque { return *o }

func (o *opaque) Apply(step numStep) { panic(42) }
