package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/jfmartin/renamebatch/pkg/models"
)

var (
	previewBanner = color.New(color.FgYellow, color.Bold)
	appliedBanner = color.New(color.FgGreen, color.Bold)
	warningText   = color.New(color.FgYellow)
	skippedText   = color.New(color.FgRed)
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer     io.Writer
	totalFiles int
	quiet      bool
}

// NewHumanFormatter creates a new human-readable formatter.
// With quiet set, only warnings and errors are printed.
func NewHumanFormatter(quiet bool) *HumanFormatter {
	return &HumanFormatter{quiet: quiet}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.totalFiles = totalFiles

	if !f.quiet {
		fmt.Fprintf(f.writer, "Scanning for files... found %d file(s)\n", totalFiles)
	}

	return nil
}

// FileProcessed reports per-file progress; the plain human formatter stays
// silent here and leaves everything to the final listing.
func (f *HumanFormatter) FileProcessed(index int, relativePath string) error {
	return nil
}

// Complete prints the plan listing, the total, warnings, and in dry-run mode
// the reminder that --execute is required.
func (f *HumanFormatter) Complete(report *models.Report) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	if len(report.Entries) == 0 {
		if !f.quiet {
			fmt.Fprintln(f.writer, "No files to rename.")
		}
		f.printWarnings(report)
		return nil
	}

	if !f.quiet {
		fmt.Fprintln(f.writer)
		if report.DryRun {
			previewBanner.Fprintln(f.writer, "PREVIEW (use --execute to apply)")
		} else {
			appliedBanner.Fprintln(f.writer, "RENAMED")
		}
		fmt.Fprintln(f.writer, "============================================================")

		for _, entry := range report.Entries {
			fmt.Fprintln(f.writer, entry.RelativePath)
			if entry.Status == models.StatusSkipped {
				skippedText.Fprintf(f.writer, "  -> %s [skipped: %s]\n", entry.NewName, entry.Reason)
			} else {
				fmt.Fprintf(f.writer, "  -> %s\n", entry.NewName)
			}
			fmt.Fprintln(f.writer)
		}

		fmt.Fprintf(f.writer, "Total: %d file(s)\n", len(report.Entries))
	}

	f.printWarnings(report)

	if report.DryRun && !f.quiet {
		fmt.Fprintln(f.writer)
		fmt.Fprintln(f.writer, "This was a dry-run. Add --execute to perform the actual rename.")
	}

	return nil
}

func (f *HumanFormatter) printWarnings(report *models.Report) {
	for _, warning := range report.Warnings {
		warningText.Fprintf(f.writer, "WARNING: %s\n", warning)
	}
}

// Error reports a fatal error
func (f *HumanFormatter) Error(err error) error {
	w := f.writer
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
