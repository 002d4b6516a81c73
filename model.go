package tracecheck

import "math/rand"

// Arbitrary is implemented by types that can produce a pseudorandom value of
// themselves from the provided generator handle.
//
// Generate must terminate and must not panic.
// The returned value must be usable without further initialization.
// Successive calls consume the state of the generator handle; no other
// ordering guarantee is given.
type Arbitrary[T any] interface {
	Generate(rng *rand.Rand) T
}

// Step constrains the step type of a model.
//
// A step is one discrete input to the state machine. Steps are applied
// strictly left to right, so the order of a step sequence is significant.
// Clone must return a copy that shares no mutable structure with the
// original. Steps should have a readable representation under the fmt verbs,
// since they appear in reports.
type Step[T any] interface {
	Arbitrary[T]
	Clone() T
}

// Model constrains the pointer to the user's state type S with step type T.
//
// Apply executes a single step against the state, mutating it in place. A
// violated invariant is signalled by panicking from within Apply. The checker
// treats any such panic as a detected bug, distinguishing panics only by
// their message.
//
// Apply must be deterministic given the state and the step. If it is not,
// the reported counterexample is not guaranteed to reproduce the failure.
//
// Clone must return a deep copy. Every trial starts from a fresh clone of
// the generated initial state, so clones must not share mutable structure
// with each other or with the original.
type Model[S, T any] interface {
	*S
	Arbitrary[S]
	Clone() S
	Apply(step T)
}
