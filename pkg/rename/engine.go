package rename

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jfmartin/renamebatch/pkg/collect"
	"github.com/jfmartin/renamebatch/pkg/logging"
	"github.com/jfmartin/renamebatch/pkg/models"
	"github.com/jfmartin/renamebatch/pkg/output"
)

// Engine runs one rename pass: collect, generate, and in execute mode apply.
// The pass is single-threaded; the counter and the warnings list are owned
// exclusively by Run.
type Engine struct {
	collector *collect.Collector
	generator *Generator
	formatter output.Formatter
	logger    logging.Logger
	operation *models.RenameOperation
	writer    io.Writer
}

// NewEngine creates a rename engine
func NewEngine(
	collector *collect.Collector,
	generator *Generator,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.RenameOperation,
) *Engine {
	return &Engine{
		collector: collector,
		generator: generator,
		formatter: formatter,
		logger:    logger,
		operation: operation,
	}
}

// SetOutput redirects formatter output (defaults to stdout)
func (e *Engine) SetOutput(w io.Writer) {
	e.writer = w
}

// Run executes the pass and returns the report. In dry-run mode no
// filesystem mutation occurs. In execute mode an existing destination skips
// that single file with a warning; any other rename failure aborts the pass.
func (e *Engine) Run(ctx context.Context) (*models.Report, error) {
	report := &models.Report{
		OperationID: e.operation.ID,
		RootPath:    e.collector.Root(),
		DryRun:      !e.operation.Execute,
		StartTime:   time.Now(),
	}

	files, err := e.collector.Collect(ctx)
	if err != nil {
		e.formatter.Error(err)
		return nil, err
	}

	report.Stats.FilesScanned = len(files)
	e.logger.Info("scan complete", logging.Fields{
		"root":  e.collector.Root(),
		"files": len(files),
	})

	if err := e.formatter.Start(e.writer, len(files)); err != nil {
		return nil, err
	}

	numbering := e.operation.Rule.Numbering
	counter := 0
	if numbering != nil {
		counter = numbering.Start
	}

	for i, file := range files {
		newName := e.generator.Generate(file, counter)

		// The counter advances for every iterated file, including
		// no-ops excluded from the plan below.
		if numbering != nil {
			counter++
		}

		if newName == file.Name() {
			report.Stats.FilesUnchanged++
			e.formatter.FileProcessed(i+1, file.RelativePath)
			continue
		}

		entry := models.PlanEntry{
			OriginalPath: file.AbsolutePath,
			NewPath:      filepath.Join(file.Dir, newName),
			RelativePath: file.RelativePath,
			NewName:      newName,
			Status:       models.StatusPlanned,
		}

		if e.operation.Execute {
			if err := e.apply(&entry, file); err != nil {
				e.formatter.Error(err)
				return nil, err
			}
		}

		e.logger.Debug("planned", logging.Fields{
			"from":   entry.RelativePath,
			"to":     entry.NewName,
			"status": string(entry.Status),
		})

		report.Entries = append(report.Entries, entry)
		report.Stats.FilesPlanned++
		e.formatter.FileProcessed(i+1, file.RelativePath)
	}

	for _, entry := range report.Entries {
		if entry.Status == models.StatusSkipped {
			warning := fmt.Sprintf("Skipping %s - target exists: %s",
				filepath.Base(entry.OriginalPath), entry.NewName)
			report.Warnings = append(report.Warnings, warning)
			report.Stats.FilesSkipped++
			e.logger.Warn("destination exists", logging.Fields{
				"file":   entry.RelativePath,
				"target": entry.NewName,
			})
		} else if entry.Status == models.StatusApplied {
			report.Stats.FilesRenamed++
		}
	}

	report.Stats.FinalCounter = counter
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	report.Status = models.StatusSuccess
	if e.operation.Execute && len(report.Warnings) > 0 {
		report.Status = models.StatusPartial
	}

	e.logger.Info("pass complete", logging.Fields{
		"planned":  report.Stats.FilesPlanned,
		"renamed":  report.Stats.FilesRenamed,
		"skipped":  report.Stats.FilesSkipped,
		"status":   string(report.Status),
		"duration": report.Duration.String(),
	})

	if err := e.formatter.Complete(report); err != nil {
		return nil, err
	}

	return report, nil
}

// apply performs the rename for one entry. An existing destination marks the
// entry skipped; the destination check and the rename are not atomic, so a
// concurrent writer can still race us (accepted, not guarded).
func (e *Engine) apply(entry *models.PlanEntry, file models.CandidateFile) error {
	if _, err := os.Lstat(entry.NewPath); err == nil {
		entry.Status = models.StatusSkipped
		entry.Reason = "target exists"
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check destination %s: %w", entry.NewPath, err)
	}

	if err := os.Rename(entry.OriginalPath, entry.NewPath); err != nil {
		return fmt.Errorf("failed to rename %s: %w", file.RelativePath, err)
	}

	entry.Status = models.StatusApplied
	return nil
}
