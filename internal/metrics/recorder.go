package metrics

import "time"

// PageResult enumerates page write outcomes for counters.
type PageResult string

const (
	PageWritten PageResult = "written"
	PageFailed  PageResult = "failed"
)

// Recorder defines observability hooks for a render run. Implementations are
// called from many render workers at once and must be safe for concurrent use.
type Recorder interface {
	IncPage(kind string, result PageResult)
	AddBytesWritten(n int)
	IncWarning(reason string)
	ObserveCollectionDuration(collection string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	SetWorkers(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncPage(string, PageResult)                      {}
func (NoopRecorder) AddBytesWritten(int)                             {}
func (NoopRecorder) IncWarning(string)                               {}
func (NoopRecorder) ObserveCollectionDuration(string, time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)                {}
func (NoopRecorder) SetWorkers(int)                                  {}
