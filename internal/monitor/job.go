package monitor

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// activeCycleStates are the job states that count against cycle uniqueness.
// Completed is deliberately absent so the next periodic tick can enqueue a
// fresh cycle once the previous one finished.
var activeCycleStates = []rivertype.JobState{ //nolint: gochecknoglobals
	rivertype.JobStateAvailable,
	rivertype.JobStatePending,
	rivertype.JobStateRunning,
	rivertype.JobStateRetryable,
	rivertype.JobStateScheduled,
}

// LeakCycleArgs enqueues one run of the leak re-check cycle. Uniqueness keeps
// at most one cycle queued or running at any time.
type LeakCycleArgs struct{}

// Kind returns the River job kind used to register and dispatch the leak
// cycle worker.
func (LeakCycleArgs) Kind() string { return "LeakCycleJob" }

// InsertOpts enforces single-flight cycles. A cycle paces itself with
// per-item delays, so retrying a half-finished one immediately is safe but
// running two concurrently is not.
func (LeakCycleArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeCycleStates,
		},
	}
}

// DarkWebCycleArgs enqueues one run of the dark-web scan cycle.
type DarkWebCycleArgs struct{}

// Kind returns the River job kind used to register and dispatch the dark-web
// cycle worker.
func (DarkWebCycleArgs) Kind() string { return "DarkWebCycleJob" }

// InsertOpts enforces single-flight cycles, see LeakCycleArgs.
func (DarkWebCycleArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeCycleStates,
		},
	}
}
