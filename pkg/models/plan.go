package models

// EntryStatus represents the outcome of a single plan entry
type EntryStatus string

const (
	// StatusPlanned means the rename was computed but not applied (dry-run)
	StatusPlanned EntryStatus = "planned"
	// StatusApplied means the filesystem rename was performed
	StatusApplied EntryStatus = "applied"
	// StatusSkipped means the destination already existed and the file
	// keeps its original name
	StatusSkipped EntryStatus = "skipped"
)

// PlanEntry is a pending or completed (original path, new path) pair.
// Entries exist only when the new path differs from the original, and the
// new path always stays in the original's parent directory.
type PlanEntry struct {
	// OriginalPath is the absolute path before renaming
	OriginalPath string

	// NewPath is the absolute path after renaming
	NewPath string

	// RelativePath is the original path relative to the scan root
	RelativePath string

	// NewName is the computed basename
	NewName string

	// Status is the entry outcome
	Status EntryStatus

	// Reason explains a skip (empty otherwise)
	Reason string
}
