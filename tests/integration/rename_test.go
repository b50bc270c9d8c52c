package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jfmartin/renamebatch/pkg/collect"
	"github.com/jfmartin/renamebatch/pkg/logging"
	"github.com/jfmartin/renamebatch/pkg/models"
	"github.com/jfmartin/renamebatch/pkg/output"
	"github.com/jfmartin/renamebatch/pkg/rename"
)

// TestHelper provides utilities for integration tests
type TestHelper struct {
	t    *testing.T
	root string
}

// NewTestHelper creates a new integration test helper
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	root, err := os.MkdirTemp("", "renamebatch-integration-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(root) })

	return &TestHelper{t: t, root: root}
}

// CreateFile creates a file under the root
func (h *TestHelper) CreateFile(name string, content []byte) {
	h.t.Helper()
	path := filepath.Join(h.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		h.t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		h.t.Fatalf("failed to create file: %v", err)
	}
}

// Exists reports whether a file exists under the root
func (h *TestHelper) Exists(name string) bool {
	h.t.Helper()
	_, err := os.Stat(filepath.Join(h.root, filepath.FromSlash(name)))
	return err == nil
}

// Run assembles the full pipeline and runs one pass into buf
func (h *TestHelper) Run(rule models.RenameRule, execute bool, formatter output.Formatter, buf *bytes.Buffer) *models.Report {
	h.t.Helper()

	collector, err := collect.New(h.root, rule.Pattern, rule.Recursive)
	if err != nil {
		h.t.Fatalf("collect.New() error = %v", err)
	}

	generator, err := rename.NewGenerator(rule)
	if err != nil {
		h.t.Fatalf("NewGenerator() error = %v", err)
	}

	op := &models.RenameOperation{
		ID:        "integration-op",
		RootPath:  h.root,
		Rule:      rule,
		Execute:   execute,
		CreatedAt: time.Now(),
	}
	if err := op.Validate(); err != nil {
		h.t.Fatalf("operation invalid: %v", err)
	}

	engine := rename.NewEngine(collector, generator, formatter, logging.NewNullLogger(), op)
	engine.SetOutput(buf)

	report, err := engine.Run(context.Background())
	if err != nil {
		h.t.Fatalf("Run() error = %v", err)
	}
	return report
}

func TestDryRunThenExecuteFlow(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFile("beach.jpg", []byte("jpeg"))
	h.CreateFile("sunset.jpg", []byte("jpeg"))
	h.CreateFile("notes.txt", []byte("text"))

	rule := models.RenameRule{Prefix: "vacation_", Pattern: "*.jpg", Recursive: true}

	// Dry-run first: preview printed, nothing touched
	var preview bytes.Buffer
	dryReport := h.Run(rule, false, output.NewHumanFormatter(false), &preview)

	out := preview.String()
	if !strings.Contains(out, "PREVIEW (use --execute to apply)") {
		t.Errorf("preview banner missing from output:\n%s", out)
	}
	if !strings.Contains(out, "beach.jpg") || !strings.Contains(out, "-> vacation_beach.jpg") {
		t.Errorf("preview listing missing entries:\n%s", out)
	}
	if !strings.Contains(out, "Total: 2 file(s)") {
		t.Errorf("preview total missing:\n%s", out)
	}
	if !strings.Contains(out, "dry-run") {
		t.Errorf("dry-run reminder missing:\n%s", out)
	}
	if !h.Exists("beach.jpg") || h.Exists("vacation_beach.jpg") {
		t.Error("dry-run must not touch the filesystem")
	}

	// Execute: same computed paths, filesystem updated
	var applied bytes.Buffer
	execReport := h.Run(rule, true, output.NewHumanFormatter(false), &applied)

	if len(execReport.Entries) != len(dryReport.Entries) {
		t.Fatalf("execute planned %d entries, dry-run planned %d", len(execReport.Entries), len(dryReport.Entries))
	}
	for i := range dryReport.Entries {
		if execReport.Entries[i].NewPath != dryReport.Entries[i].NewPath {
			t.Errorf("entry %d: execute %s != dry-run %s",
				i, execReport.Entries[i].NewPath, dryReport.Entries[i].NewPath)
		}
	}

	out = applied.String()
	if !strings.Contains(out, "RENAMED") {
		t.Errorf("applied banner missing:\n%s", out)
	}
	if !h.Exists("vacation_beach.jpg") || !h.Exists("vacation_sunset.jpg") {
		t.Error("execute should rename matching files")
	}
	if !h.Exists("notes.txt") {
		t.Error("non-matching file must be untouched")
	}
	if execReport.Status.ExitCode() != 0 {
		t.Errorf("exit code = %d, want 0", execReport.Status.ExitCode())
	}
}

func TestConflictWarningAfterListing(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFile("report_v1.txt", []byte("one"))
	h.CreateFile("report_v2.txt", []byte("two"))

	// Both map to report_v.txt; second one collides
	rule := models.RenameRule{Search: "[0-9]", Replace: "", Pattern: "*", Recursive: true}

	var buf bytes.Buffer
	report := h.Run(rule, true, output.NewHumanFormatter(false), &buf)

	if len(report.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", report.Warnings)
	}
	if report.Status.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1 for partial run", report.Status.ExitCode())
	}

	out := buf.String()
	warnIdx := strings.Index(out, "WARNING:")
	totalIdx := strings.Index(out, "Total:")
	if warnIdx == -1 || totalIdx == -1 {
		t.Fatalf("output missing warning or total:\n%s", out)
	}
	if warnIdx < totalIdx {
		t.Errorf("warnings must come after the listing:\n%s", out)
	}

	if !h.Exists("report_v.txt") {
		t.Error("first file should have been renamed")
	}
	if !h.Exists("report_v2.txt") {
		t.Error("conflicting file should keep its original name")
	}
}

func TestJSONReportOutput(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFile("a.txt", nil)
	h.CreateFile("b.txt", nil)

	rule := models.RenameRule{
		Numbering: &models.Numbering{Mode: models.NumberSequential, Start: 1, Padding: 3},
		Pattern:   "*",
		Recursive: true,
	}

	var buf bytes.Buffer
	h.Run(rule, false, output.NewJSONFormatter(), &buf)

	var doc output.JSONReport
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if !doc.DryRun {
		t.Error("dry_run = false, want true")
	}
	if doc.Status != string(models.StatusSuccess) {
		t.Errorf("status = %s, want %s", doc.Status, models.StatusSuccess)
	}
	if len(doc.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(doc.Entries))
	}
	if doc.Entries[0].NewName != "001.txt" || doc.Entries[1].NewName != "002.txt" {
		t.Errorf("entries = %+v, want 001.txt and 002.txt", doc.Entries)
	}
	if doc.Stats.FinalCounter != 3 {
		t.Errorf("final_counter = %d, want 3", doc.Stats.FinalCounter)
	}
}

func TestEmptyPlanMessage(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFile("a.txt", nil)

	// Matches nothing in the stem, so the plan is empty
	rule := models.RenameRule{Search: "nomatch", Replace: "x", Pattern: "*", Recursive: true}

	var buf bytes.Buffer
	report := h.Run(rule, false, output.NewHumanFormatter(false), &buf)

	if len(report.Entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(report.Entries))
	}
	if !strings.Contains(buf.String(), "No files to rename.") {
		t.Errorf("empty-plan message missing:\n%s", buf.String())
	}
}

func TestDateRenameUsesModTime(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFile("scan.pdf", []byte("pdf"))

	modTime := time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)
	if err := os.Chtimes(filepath.Join(h.root, "scan.pdf"), modTime, modTime); err != nil {
		t.Fatalf("failed to set mod time: %v", err)
	}

	rule := models.RenameRule{
		Date:      &models.DateInsertion{Source: models.DateModified, Position: models.PositionSuffix},
		Pattern:   "*",
		Recursive: true,
	}

	var buf bytes.Buffer
	h.Run(rule, true, output.NewHumanFormatter(true), &buf)

	if !h.Exists("scan_20240305.pdf") {
		t.Error("expected scan_20240305.pdf after execute")
	}
}
