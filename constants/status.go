package constants

// JobState is the canonical state for rows in score_job.
type JobState string

// Stable values (store these exact strings in DB).
const (
	JobStatePending    JobState = "PENDING"    // created, not yet routed
	JobStateQueued     JobState = "QUEUED"     // work items durably enqueued
	JobStateProcessing JobState = "PROCESSING" // at least one worker picked up a chunk
	JobStateCompleted  JobState = "COMPLETED"  // terminal success
	JobStateFailed     JobState = "FAILED"     // terminal failure (fatal error or stall)
	JobStateCancelled  JobState = "CANCELLED"  // terminal, explicit cancellation
)

// Terminal reports whether a job in this state can never change state again.
func (s JobState) Terminal() bool {
	switch s {
	case JobStateCompleted, JobStateFailed, JobStateCancelled:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal, forward-only
// step in the job lifecycle. A job never returns to an earlier state.
func (s JobState) CanTransition(next JobState) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case JobStateQueued:
		return s == JobStatePending
	case JobStateProcessing:
		return s == JobStateQueued
	case JobStateCompleted, JobStateFailed:
		return s == JobStateProcessing
	case JobStateCancelled:
		return true // any non-terminal state may be cancelled
	}
	return false
}

// FailReason distinguishes why a job ended up FAILED.
type FailReason string

const (
	FailReasonFatal   FailReason = "fatal_error" // record store or broker unreachable
	FailReasonStalled FailReason = "stalled"     // watchdog: no progress within the stall window
)
