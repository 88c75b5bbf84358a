package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sdejongh/stemsweep/pkg/models"
)

// WriteReportFile writes the candidates and failures of a run to path.
// Format is "human" or "json". Nothing is written when there are no candidates.
func WriteReportFile(report *models.SweepReport, path string, format string) error {
	if len(report.Candidates) == 0 {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	switch format {
	case "json":
		err = writeReportJSON(report, file)
	default:
		err = writeReportHuman(report, file)
	}
	if err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

func writeReportHuman(report *models.SweepReport, w io.Writer) error {
	fmt.Fprintf(w, "Sweep Report\n")
	fmt.Fprintf(w, "============\n\n")
	fmt.Fprintf(w, "Generated:   %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Operation:   %s\n", report.OperationID)
	if !report.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Requested:   %s\n", report.CreatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "Destination: %s\n", report.DestPath)
	fmt.Fprintf(w, "Source:      %s\n", report.SourcePath)
	fmt.Fprintf(w, "Dry Run:     %v\n", report.DryRun)
	fmt.Fprintf(w, "Status:      %s\n\n", report.Status)

	title := fmt.Sprintf("Candidates (%d %s files)", len(report.Candidates), report.SourceKind)
	fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	for i, c := range report.Candidates {
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, c.Path, formatBytes(c.Size))
	}

	if len(report.Failures) > 0 {
		title = fmt.Sprintf("Failures (%d files)", len(report.Failures))
		fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
		for _, failure := range report.Failures {
			fmt.Fprintf(w, "  %s\n    %s (%s)\n", failure.Path, failure.Error(), failure.Timestamp.Format(time.RFC3339))
		}
	}

	_, err := fmt.Fprintf(w, "\nDeleted: %d\n", report.Deleted())
	return err
}

func writeReportJSON(report *models.SweepReport, w io.Writer) error {
	out := struct {
		Generated string `json:"generated"`
		JSONReportData
	}{
		Generated:      time.Now().Format(time.RFC3339),
		JSONReportData: NewJSONReport(report),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
