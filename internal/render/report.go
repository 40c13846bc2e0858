package render

import (
	"sort"
	"sync"
	"time"
)

// Outcome is the final state of a render run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
)

// Report captures what a render run produced. It is filled concurrently by
// the render workers; read it only after Run has returned.
type Report struct {
	mu sync.Mutex

	Start time.Time
	End   time.Time
	// Pages counts written pages per collection ("records", "search", ...).
	Pages map[string]int
	// Failed counts pages that could not be rendered or written.
	Failed int
	// Warnings counts degraded-output events per reason.
	Warnings map[string]int
	Bytes    int64
	// CollectionDurations is the wall time of each collection, barrier
	// included.
	CollectionDurations map[string]time.Duration
	// Files lists every written file in the order the writes completed,
	// slash separated and relative to the output directory.
	Files []string
}

func newReport() *Report {
	return &Report{
		Pages:               make(map[string]int),
		Warnings:            make(map[string]int),
		CollectionDurations: make(map[string]time.Duration),
	}
}

func (r *Report) addPage(collection, path string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Pages[collection]++
	r.Bytes += int64(n)
	r.Files = append(r.Files, path)
}

func (r *Report) addFile(path string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Bytes += int64(n)
	r.Files = append(r.Files, path)
}

func (r *Report) addFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failed++
}

func (r *Report) addWarning(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings[reason]++
}

func (r *Report) setCollectionDuration(collection string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CollectionDurations[collection] = d
}

// TotalPages is the number of pages written across all collections.
func (r *Report) TotalPages() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.Pages {
		total += n
	}
	return total
}

// TotalWarnings is the number of warnings across all reasons.
func (r *Report) TotalWarnings() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.Warnings {
		total += n
	}
	return total
}

// Outcome derives the overall result: failed when any page failed, warning
// when anything degraded, success otherwise.
func (r *Report) Outcome() Outcome {
	switch {
	case r.Failed > 0:
		return OutcomeFailed
	case r.TotalWarnings() > 0:
		return OutcomeWarning
	default:
		return OutcomeSuccess
	}
}

// SortedFiles returns the written files in lexical order.
func (r *Report) SortedFiles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Files))
	copy(out, r.Files)
	sort.Strings(out)
	return out
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}
