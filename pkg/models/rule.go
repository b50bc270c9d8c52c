package models

// NumberingMode defines how the counter is inserted into the stem
type NumberingMode string

const (
	// NumberSequential replaces the whole stem with the padded counter
	NumberSequential NumberingMode = "sequential"
	// NumberAppend appends the padded counter to the stem with an underscore
	NumberAppend NumberingMode = "append"
)

// DateSource defines which timestamp feeds the date insertion
type DateSource string

const (
	// DateModified uses the file modification time
	DateModified DateSource = "modified"
	// DateCreated uses the best available creation-like timestamp
	DateCreated DateSource = "created"
	// DateCurrent uses the wall clock at run time
	DateCurrent DateSource = "current"
)

// DatePosition defines where the date string is inserted
type DatePosition string

const (
	// PositionPrefix produces date_stem
	PositionPrefix DatePosition = "prefix"
	// PositionSuffix produces stem_date
	PositionSuffix DatePosition = "suffix"
)

// Numbering holds counter settings; nil on a rule means numbering is disabled
type Numbering struct {
	Mode    NumberingMode
	Start   int
	Padding int
}

// DateInsertion holds date settings; nil on a rule means date insertion is disabled
type DateInsertion struct {
	Source   DateSource
	Position DatePosition
}

// RenameRule is the immutable configuration for one run.
// It is built once from user input and never mutated afterwards.
type RenameRule struct {
	// Prefix is prepended to the stem
	Prefix string

	// Suffix is appended to the stem, before the extension
	Suffix string

	// Search is a regular expression applied to the stem; empty disables substitution
	Search string

	// Replace is the substitution text for Search (may be empty to strip matches)
	Replace string

	// Numbering enables counter insertion when non-nil
	Numbering *Numbering

	// Date enables date insertion when non-nil
	Date *DateInsertion

	// Pattern is the glob filter for candidate files
	Pattern string

	// Recursive controls whether subdirectories are scanned
	Recursive bool
}

// HasRenameOption reports whether the rule can change at least one name.
// A rule without any option always produces no-op plans.
func (r *RenameRule) HasRenameOption() bool {
	return r.Prefix != "" || r.Suffix != "" || r.Search != "" ||
		r.Numbering != nil || r.Date != nil
}

// Validate checks if the rule configuration is valid
func (r *RenameRule) Validate() error {
	if n := r.Numbering; n != nil {
		if n.Mode != NumberSequential && n.Mode != NumberAppend {
			return &ValidationError{Field: "Numbering.Mode", Message: "must be 'sequential' or 'append'"}
		}
		if n.Padding < 0 {
			return &ValidationError{Field: "Numbering.Padding", Message: "must not be negative"}
		}
	}
	if d := r.Date; d != nil {
		switch d.Source {
		case DateModified, DateCreated, DateCurrent:
		default:
			return &ValidationError{Field: "Date.Source", Message: "must be 'modified', 'created' or 'current'"}
		}
		if d.Position != PositionPrefix && d.Position != PositionSuffix {
			return &ValidationError{Field: "Date.Position", Message: "must be 'prefix' or 'suffix'"}
		}
	}
	if r.Pattern == "" {
		return &ValidationError{Field: "Pattern", Message: "pattern is required"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
