package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/stemsweep/pkg/models"
)

// JSONFormatter writes the final report as a single JSON document
type JSONFormatter struct {
	writer io.Writer
}

// JSONReportData is the document written by JSONFormatter
type JSONReportData struct {
	OperationID string              `json:"operation_id"`
	Destination string              `json:"destination"`
	Source      string              `json:"source"`
	SourceKind  string              `json:"source_kind"`
	DryRun      bool                `json:"dry_run"`
	CreatedAt   time.Time           `json:"created_at"`
	Status      string              `json:"status"`
	Duration    string              `json:"duration"`
	DurationMs  int64               `json:"duration_ms"`
	Stats       JSONStatsData       `json:"stats"`
	Candidates  []JSONCandidateData `json:"candidates"`
	Deleted     int                 `json:"deleted"`
	Failures    []JSONFailureData   `json:"failures,omitempty"`
}

// JSONStatsData represents scan statistics
type JSONStatsData struct {
	DestEntries   int `json:"dest_entries"`
	DestFiles     int `json:"dest_files"`
	SourceEntries int `json:"source_entries"`
	SourceFiles   int `json:"source_files"`
	Skipped       int `json:"skipped"`
}

// JSONCandidateData represents one deletion candidate
type JSONCandidateData struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
	Size  int64  `json:"size"`
}

// JSONFailureData represents a failed deletion
type JSONFailureData struct {
	Path  string    `json:"path"`
	Error string    `json:"error"`
	Time  time.Time `json:"time"`
}

// NewJSONFormatter creates a JSON formatter writing to w (stdout when nil)
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

// Start does nothing
func (f *JSONFormatter) Start(totalCandidates int, dryRun bool) error {
	return nil
}

// Progress does nothing; progress events would break the single-document output
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	return nil
}

// Complete encodes the report
func (f *JSONFormatter) Complete(report *models.SweepReport) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewJSONReport(report))
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

// NewJSONReport converts a sweep report to its JSON form
func NewJSONReport(report *models.SweepReport) JSONReportData {
	data := JSONReportData{
		OperationID: report.OperationID,
		Destination: report.DestPath,
		Source:      report.SourcePath,
		SourceKind:  report.SourceKind,
		DryRun:      report.DryRun,
		CreatedAt:   report.CreatedAt,
		Status:      string(report.Status),
		Duration:    report.Duration.Round(time.Millisecond).String(),
		DurationMs:  report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			DestEntries:   report.Stats.DestEntriesScanned,
			DestFiles:     report.Stats.DestFilesIndexed,
			SourceEntries: report.Stats.SourceEntriesScanned,
			SourceFiles:   report.Stats.SourceFilesIndexed,
			Skipped:       report.Stats.EntriesSkipped,
		},
		Candidates: make([]JSONCandidateData, 0, len(report.Candidates)),
		Deleted:    report.Deleted(),
	}

	for i, c := range report.Candidates {
		data.Candidates = append(data.Candidates, JSONCandidateData{Index: i + 1, Path: c.Path, Size: c.Size})
	}
	for _, failure := range report.Failures {
		data.Failures = append(data.Failures, JSONFailureData{
			Path:  failure.Path,
			Error: failure.Error(),
			Time:  failure.Timestamp,
		})
	}

	return data
}
