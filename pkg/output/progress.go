package output

import (
	"io"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"

	"github.com/sdejongh/stemsweep/pkg/models"
)

const progressTemplate = `Deleting {{counters . }} {{bar . "[" "=" ">" " " "]" }} {{percent . }} {{etime . }}`

// ProgressFormatter draws a deletion progress bar and delegates the report to another formatter
type ProgressFormatter struct {
	inner  Formatter
	writer io.Writer

	mu  sync.Mutex
	bar *pb.ProgressBar
}

// NewProgressFormatter wraps inner, drawing the bar on w (stderr when nil)
func NewProgressFormatter(inner Formatter, w io.Writer) *ProgressFormatter {
	if w == nil {
		w = os.Stderr
	}
	return &ProgressFormatter{inner: inner, writer: w}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Start creates the bar for live runs with at least one candidate
func (f *ProgressFormatter) Start(totalCandidates int, dryRun bool) error {
	f.mu.Lock()
	if !dryRun && totalCandidates > 0 {
		f.bar = pb.New(totalCandidates).
			SetWriter(f.writer).
			SetTemplateString(progressTemplate).
			Start()
	}
	f.mu.Unlock()

	return f.inner.Start(totalCandidates, dryRun)
}

// Progress advances the bar for each finished deletion
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	f.mu.Lock()
	bar := f.bar
	f.mu.Unlock()

	if bar != nil && (update.Type == UpdateDeleteComplete || update.Type == UpdateDeleteError) {
		bar.Increment()
	}
	return f.inner.Progress(update)
}

// Complete stops the bar before the report is printed
func (f *ProgressFormatter) Complete(report *models.SweepReport) error {
	f.mu.Lock()
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	f.mu.Unlock()

	return f.inner.Complete(report)
}

// Name returns the wrapped formatter's name
func (f *ProgressFormatter) Name() string {
	return f.inner.Name()
}
