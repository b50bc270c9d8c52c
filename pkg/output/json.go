package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/jfmartin/renamebatch/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct {
	writer     io.Writer
	totalFiles int
	startTime  time.Time
}

// JSONReport is the machine-readable run report
type JSONReport struct {
	OperationID string      `json:"operation_id"`
	RootPath    string      `json:"root_path"`
	DryRun      bool        `json:"dry_run"`
	Status      string      `json:"status"`
	DurationMs  int64       `json:"duration_ms"`
	TotalFiles  int         `json:"total_files"`
	Entries     []JSONEntry `json:"entries"`
	Warnings    []string    `json:"warnings,omitempty"`
	Stats       JSONStats   `json:"stats"`
}

// JSONEntry represents one plan entry
type JSONEntry struct {
	From    string `json:"from"`
	To      string `json:"to"`
	NewName string `json:"new_name"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

// JSONStats represents run statistics
type JSONStats struct {
	FilesScanned   int `json:"files_scanned"`
	FilesPlanned   int `json:"files_planned"`
	FilesRenamed   int `json:"files_renamed"`
	FilesSkipped   int `json:"files_skipped"`
	FilesUnchanged int `json:"files_unchanged"`
	FinalCounter   int `json:"final_counter"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.totalFiles = totalFiles
	f.startTime = time.Now()
	return nil
}

// FileProcessed is silent; the JSON document is emitted once at the end so
// the output stays a single parseable value.
func (f *JSONFormatter) FileProcessed(index int, relativePath string) error {
	return nil
}

// Complete writes the full report as one indented JSON document
func (f *JSONFormatter) Complete(report *models.Report) error {
	if f.writer == nil {
		f.writer = os.Stdout
	}

	entries := make([]JSONEntry, 0, len(report.Entries))
	for _, e := range report.Entries {
		entries = append(entries, JSONEntry{
			From:    e.RelativePath,
			To:      e.NewPath,
			NewName: e.NewName,
			Status:  string(e.Status),
			Reason:  e.Reason,
		})
	}

	doc := JSONReport{
		OperationID: report.OperationID,
		RootPath:    report.RootPath,
		DryRun:      report.DryRun,
		Status:      string(report.Status),
		DurationMs:  report.Duration.Milliseconds(),
		TotalFiles:  report.Stats.FilesScanned,
		Entries:     entries,
		Warnings:    report.Warnings,
		Stats: JSONStats{
			FilesScanned:   report.Stats.FilesScanned,
			FilesPlanned:   report.Stats.FilesPlanned,
			FilesRenamed:   report.Stats.FilesRenamed,
			FilesSkipped:   report.Stats.FilesSkipped,
			FilesUnchanged: report.Stats.FilesUnchanged,
			FinalCounter:   report.Stats.FinalCounter,
		},
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Error writes a JSON error object
func (f *JSONFormatter) Error(err error) error {
	w := f.writer
	if w == nil {
		w = os.Stderr
	}
	return json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
