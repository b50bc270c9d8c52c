package output

import (
	"io"

	"github.com/jfmartin/renamebatch/pkg/models"
)

// Formatter defines the interface for output formatting.
// Implementations include human-readable, JSON and progress-bar formatters.
type Formatter interface {
	// Start initializes the formatter once collection is done.
	// A nil writer defaults to stdout.
	Start(writer io.Writer, totalFiles int) error

	// FileProcessed reports that one candidate file has been handled
	FileProcessed(index int, relativePath string) error

	// Complete finalizes output: the plan listing, warnings and totals.
	// Warnings are always printed after the listing, never interleaved.
	Complete(report *models.Report) error

	// Error reports a fatal error during the pass
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
