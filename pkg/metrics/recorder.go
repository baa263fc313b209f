package metrics

import "time"

// Outcome labels for generation runs.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeLocked  = "locked"
)

// Recorder receives generation metrics. Implementations must tolerate
// being called from a single goroutine per run.
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome string)
	AddItems(source string, n int)
	IncSourceError(source string)
	IncFilesWritten(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(string)             {}
func (NoopRecorder) AddItems(string, int)             {}
func (NoopRecorder) IncSourceError(string)            {}
func (NoopRecorder) IncFilesWritten(int)              {}

var _ Recorder = NoopRecorder{}
