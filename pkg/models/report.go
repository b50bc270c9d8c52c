package models

import (
	"time"
)

// RenameOperation represents one run configuration
type RenameOperation struct {
	ID        string
	RootPath  string
	Rule      RenameRule
	Execute   bool
	CreatedAt time.Time
}

// Validate checks if the operation configuration is valid
func (op *RenameOperation) Validate() error {
	if op.RootPath == "" {
		return &ValidationError{Field: "RootPath", Message: "root path is required"}
	}
	if !op.Rule.HasRenameOption() {
		return &ValidationError{Field: "Rule", Message: "no rename option selected"}
	}
	return op.Rule.Validate()
}

// Report represents the results of a rename run
type Report struct {
	// Operation details
	OperationID string
	RootPath    string
	DryRun      bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Plan entries (only files whose name actually changes)
	Entries []PlanEntry

	// Warnings collected during the pass (destination conflicts)
	Warnings []string

	// Statistics
	Stats Statistics

	// Overall status
	Status RunStatus
}

// Statistics holds rename run metrics
type Statistics struct {
	// FilesScanned is the number of candidate files collected
	FilesScanned int

	// FilesPlanned is the number of plan entries (new name != old name)
	FilesPlanned int

	// FilesRenamed is the number of renames actually performed
	FilesRenamed int

	// FilesSkipped is the number of conflict skips
	FilesSkipped int

	// FilesUnchanged is the number of files whose computed name was a no-op
	FilesUnchanged int

	// FinalCounter is the counter value after the pass (0 when numbering is off)
	FinalCounter int
}

// RunStatus represents the overall result
type RunStatus string

const (
	// StatusSuccess indicates the pass completed without conflicts
	StatusSuccess RunStatus = "success"
	// StatusPartial indicates some files were skipped on conflicts
	StatusPartial RunStatus = "partial"
	// StatusFailed indicates the run aborted
	StatusFailed RunStatus = "failed"
)

// ExitCode returns the appropriate exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}
