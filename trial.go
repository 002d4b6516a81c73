package tracecheck

// Message used for a captured panic that carries no readable payload.
const unreadablePanicMessage = "panic carried no readable message"

// The result of executing one step sequence against a state clone.
type trialOutcome struct {
	failed bool

	// Message extracted from the captured panic. Empty if the trial passed.
	msg string

	// Number of steps applied, including the step that panicked.
	applied int
}

// Applies the steps in order to a fresh clone of initial.
//
// A panic raised by Apply is captured and converted into a failed outcome
// instead of propagating. The recover is scoped to the application loop so
// that panics raised elsewhere in the checker are not swallowed.
func runTrial[S any, T Step[T], PS Model[S, T]](initial S, steps []T) (out trialOutcome) {
	st := PS(&initial).Clone()
	node := PS(&st)
	defer func() {
		if p := recover(); p != nil {
			out.failed = true
			out.msg = panicMessage(p)
		}
	}()
	for _, step := range steps {
		out.applied++
		node.Apply(step.Clone())
	}
	return out
}

// Extract a human readable message from a captured panic value.
// Falls back to a fixed placeholder if the value carries no message.
func panicMessage(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case error:
		return v.Error()
	}
	return unreadablePanicMessage
}
