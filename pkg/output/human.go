package output

import (
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/stemsweep/pkg/models"
)

// HumanFormatter prints the plain-text report: candidates or the deletion
// summary on the output stream, failures on the error stream.
type HumanFormatter struct {
	out    io.Writer
	errOut io.Writer
}

// NewHumanFormatter creates a human-readable formatter. Nil writers default to stdout/stderr.
func NewHumanFormatter(out, errOut io.Writer) *HumanFormatter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &HumanFormatter{out: out, errOut: errOut}
}

// Start does nothing; the text report is printed on completion
func (f *HumanFormatter) Start(totalCandidates int, dryRun bool) error {
	return nil
}

// Progress does nothing
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	return nil
}

// Complete prints the dry-run listing or the deletion summary
func (f *HumanFormatter) Complete(report *models.SweepReport) error {
	if report.DryRun {
		for i, c := range report.Candidates {
			fmt.Fprintf(f.out, "%d- `%s`\n", i+1, c.Path)
		}
		_, err := fmt.Fprintf(f.out, "\nDry run: Would delete %d already processed %s files\n",
			len(report.Candidates), report.SourceKind)
		return err
	}

	if _, err := fmt.Fprintf(f.out, "Successfully deleted %d files\n", report.Deleted()); err != nil {
		return err
	}

	if len(report.Failures) > 0 {
		fmt.Fprintf(f.errOut, "Failed to delete %d files:\n", len(report.Failures))
		for _, failure := range report.Failures {
			fmt.Fprintf(f.errOut, "- %s\n", failure.Error())
		}
	}

	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
