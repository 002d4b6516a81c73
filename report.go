package tracecheck

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"tracecheck/recorder"
)

// The result of a checking session.
//
// If Result is true the full candidate sequence completed without a failure;
// Steps is nil and Err is empty. Otherwise Steps holds the minimized failing
// sequence and Err holds the message of the last failing trial.
//
// Applying Steps in order to a fresh clone of State reproduces the failure,
// provided the model's Apply is deterministic. State is the initial state as
// generated at the start of the session; shrinking never re-randomizes it.
type Report[S, T any] struct {
	Result bool
	State  S
	Steps  []T
	Err    string
	Stats  recorder.SessionStats
}

// Generate a response.
//
// Returns a boolean that is true if the session found no failure, false
// otherwise, and a string describing the result. If a failure was found the
// description contains the failure message, the initial state and the
// minimized step sequence.
func (r *Report[S, T]) Response() (bool, string) {
	if r.Result {
		return true, "All trials passed"
	}
	var buffer bytes.Buffer
	r.Export(&buffer)
	return false, buffer.String()
}

// Write a human readable representation of the report to the writer.
func (r *Report[S, T]) Export(w io.Writer) {
	if r.Result {
		fmt.Fprintln(w, "All trials passed")
		return
	}
	wrt := tabwriter.NewWriter(w, 4, 4, 0, ' ', 0)
	fmt.Fprintf(wrt, "Invariant broken: %v\n", r.Err)
	fmt.Fprintf(wrt, "Initial state: %v\n", r.State)
	fmt.Fprintln(wrt, "Steps:")
	for _, step := range r.Steps {
		fmt.Fprintf(wrt, "-> %v \n", step)
	}
	wrt.Flush()
}

// Replay re-executes the report's step sequence against a fresh clone of the
// report's initial state.
//
// Returns the captured failure message and true if the failure reproduced.
// Replaying the report of a successful session runs no failing step and
// returns false.
func Replay[S any, T Step[T], PS Model[S, T]](r *Report[S, T]) (string, bool) {
	out := runTrial[S, T, PS](r.State, r.Steps)
	return out.msg, out.failed
}
