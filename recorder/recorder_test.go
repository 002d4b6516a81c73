package recorder

import "testing"

func TestRecorderAggregatesTrials(t *testing.T) {
	rec := New()
	rec.Trial(false, "")
	rec.Trial(true, "boom")
	rec.Trial(true, "boom")
	rec.Trial(true, "bang")
	rec.Truncated(3)

	stats := rec.End(2)
	if stats.Trials != 4 {
		t.Errorf("Recorded four trials. Got: %v", stats.Trials)
	}
	if stats.FailedTrials != 3 {
		t.Errorf("Recorded three failed trials. Got: %v", stats.FailedTrials)
	}
	if stats.TruncatedLength != 3 {
		t.Errorf("Expected a truncated length of 3. Got: %v", stats.TruncatedLength)
	}
	if stats.FinalLength != 2 {
		t.Errorf("Expected a final length of 2. Got: %v", stats.FinalLength)
	}
	if len(stats.Messages) != 2 {
		t.Errorf("Observed two distinct messages. Got: %v", stats.Messages)
	}
	if stats.Messages["boom"] != 2 || stats.Messages["bang"] != 1 {
		t.Errorf("Unexpected message counts: %v", stats.Messages)
	}
}

func TestRecorderIgnoresMessagesOfPassingTrials(t *testing.T) {
	rec := New()
	rec.Trial(false, "should not be stored")

	stats := rec.End(0)
	if len(stats.Messages) != 0 {
		t.Errorf("Passing trials carry no message. Got: %v", stats.Messages)
	}
}

func TestSessionStatsAreDetachedFromTheRecorder(t *testing.T) {
	rec := New()
	rec.Trial(true, "boom")

	stats := rec.End(1)
	rec.Trial(true, "boom")
	if stats.Messages["boom"] != 1 {
		t.Errorf("The stats should snapshot the messages. Got: %v", stats.Messages)
	}
}
