package recorder

import "golang.org/x/exp/maps"

// Collects trial accounting for a single checking session.
//
// The Recorder is purely observational and never influences the outcome of a
// session. It should only be accessed from a single goroutine.
// When the session has been completed the End function aggregates the
// collected values into a SessionStats and the Recorder can be discarded.
type Recorder struct {
	trials    int
	failed    int
	truncated int
	messages  map[string]int
}

// Create a new Recorder
func New() *Recorder {
	return &Recorder{
		messages: make(map[string]int),
	}
}

// Record the outcome of one trial.
//
// msg is the failure message of the trial and is ignored if the trial passed.
func (r *Recorder) Trial(failed bool, msg string) {
	r.trials++
	if failed {
		r.failed++
		r.messages[msg]++
	}
}

// Record the length of the working sequence after truncation at the first
// failing step.
func (r *Recorder) Truncated(n int) {
	r.truncated = n
}

// Finish the session and aggregate the collected values.
//
// finalLen is the length of the step sequence in the final report.
func (r *Recorder) End(finalLen int) SessionStats {
	return SessionStats{
		Trials:          r.trials,
		FailedTrials:    r.failed,
		TruncatedLength: r.truncated,
		FinalLength:     finalLen,
		Messages:        maps.Clone(r.messages),
	}
}

// SessionStats summarizes the trials executed during one checking session.
type SessionStats struct {
	// Total number of trials executed, including the initial trial.
	Trials int

	// Number of trials that ended in a captured failure.
	FailedTrials int

	// Length of the candidate sequence after truncation at the first
	// failure. Zero if the initial trial passed.
	TruncatedLength int

	// Length of the step sequence in the final report. Zero on success.
	FinalLength int

	// Distinct failure messages observed during the session, with the number
	// of trials in which each occurred.
	Messages map[string]int
}
