package models

import (
	"time"
)

// SweepReport represents the results of a reconciliation run
type SweepReport struct {
	OperationID string
	DestPath    string
	SourcePath  string
	SourceKind  string
	DryRun      bool

	// CreatedAt is when the operation was requested, StartTime when scanning began
	CreatedAt time.Time
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	Stats Statistics

	// Candidates are the source files whose stem exists in the destination
	Candidates []FileEntry

	// Failures are the candidates that could not be removed (live runs only)
	Failures []DeletionFailure

	Status SweepStatus
}

// Statistics holds scan metrics for both directories
type Statistics struct {
	DestEntriesScanned   int
	DestFilesIndexed     int
	SourceEntriesScanned int
	SourceFilesIndexed   int
	EntriesSkipped       int
}

// SweepStatus represents the overall result
type SweepStatus string

const (
	// StatusSuccess indicates every candidate was handled
	StatusSuccess SweepStatus = "success"
	// StatusPartial indicates some deletions failed
	StatusPartial SweepStatus = "partial"
	// StatusFailed indicates a directory could not be scanned
	StatusFailed SweepStatus = "failed"
)

// DeletionFailure records a candidate that could not be removed
type DeletionFailure struct {
	Path      string
	Err       error
	Timestamp time.Time
}

// Error returns the underlying error message
func (f DeletionFailure) Error() string {
	if f.Err == nil {
		return "delete " + f.Path + ": unknown error"
	}
	return f.Err.Error()
}

// Deleted returns the number of candidates removed. Dry runs remove nothing.
func (r *SweepReport) Deleted() int {
	if r.DryRun {
		return 0
	}
	return len(r.Candidates) - len(r.Failures)
}

// Finalize stamps the end time and derives the status from the failures
func (r *SweepReport) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	if len(r.Failures) > 0 {
		r.Status = StatusPartial
	} else {
		r.Status = StatusSuccess
	}
}
