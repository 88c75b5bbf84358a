package output

import (
	"github.com/sdejongh/stemsweep/pkg/models"
)

// Progress update types sent while candidates are removed
const (
	UpdateDeleteComplete = "delete_complete"
	UpdateDeleteError    = "delete_error"
)

// ProgressUpdate represents a progress notification during deletion
type ProgressUpdate struct {
	Type  string // UpdateDeleteComplete or UpdateDeleteError
	Path  string
	Index int // 1-based position of the candidate
	Total int
	Error error
}

// Formatter renders the outcome of a sweep.
// Progress may be called from several goroutines at once.
type Formatter interface {
	// Start is called once the candidate set is known
	Start(totalCandidates int, dryRun bool) error

	// Progress reports one finished deletion
	Progress(update ProgressUpdate) error

	// Complete renders the final report
	Complete(report *models.SweepReport) error

	// Name returns the formatter name
	Name() string
}
