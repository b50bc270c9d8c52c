package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jfmartin/renamebatch/pkg/config"
	"github.com/jfmartin/renamebatch/pkg/models"
)

// validateRenameFlags validates the rename command flags.
// All usage errors surface here, before anything touches the filesystem.
func validateRenameFlags(cmd *cobra.Command) error {
	// --search and --replace must be used together. Presence is what
	// matters: an explicitly empty --replace is a valid strip.
	searchGiven := cmd.Flags().Changed("search")
	replaceGiven := cmd.Flags().Changed("replace")
	if searchGiven != replaceGiven {
		return fmt.Errorf("--search and --replace must be used together")
	}

	// At least one rename option must be selected. An empty --search
	// counts as no option, mirroring the empty-prefix/suffix case.
	if renameFlags.Prefix == "" && renameFlags.Suffix == "" &&
		renameFlags.Search == "" && !renameFlags.Number && renameFlags.Date == "" {
		return fmt.Errorf("no rename options specified: use --prefix, --suffix, --search/--replace, --number, or --date")
	}

	if mode := renameFlags.NumberMode; mode != "" && mode != "sequential" && mode != "append" {
		return fmt.Errorf("invalid number mode: %s (valid: sequential, append)", mode)
	}

	if cmd.Flags().Changed("number-padding") && renameFlags.NumberPadding < 0 {
		return fmt.Errorf("invalid number padding: %d (must not be negative)", renameFlags.NumberPadding)
	}

	if d := renameFlags.Date; d != "" && d != "modified" && d != "created" && d != "current" {
		return fmt.Errorf("invalid date source: %s (valid: modified, created, current)", d)
	}

	if p := renameFlags.DatePosition; p != "" && p != "prefix" && p != "suffix" {
		return fmt.Errorf("invalid date position: %s (valid: prefix, suffix)", p)
	}

	if o := renameFlags.Output; o != "" && o != "human" && o != "json" {
		return fmt.Errorf("invalid output format: %s (valid: human, json)", o)
	}

	if f := renameFlags.LogFormat; f != "" && f != "text" && f != "json" {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", f)
	}

	return nil
}

// loadConfig loads configuration from file or returns defaults
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	if renameFlags.Pattern != "" {
		cfg.Rename.Pattern = renameFlags.Pattern
	}
	if renameFlags.NumberMode != "" {
		cfg.Rename.NumberMode = renameFlags.NumberMode
	}
	if cmd.Flags().Changed("number-start") {
		cfg.Rename.NumberStart = renameFlags.NumberStart
	}
	if cmd.Flags().Changed("number-padding") {
		cfg.Rename.NumberPadding = renameFlags.NumberPadding
	}
	if renameFlags.DatePosition != "" {
		cfg.Rename.DatePosition = renameFlags.DatePosition
	}

	if renameFlags.Output != "" {
		cfg.Output.Format = renameFlags.Output
	}

	if renameFlags.LogFile != "" {
		cfg.Logging.File = renameFlags.LogFile
	}
	if renameFlags.LogFormat != "" {
		cfg.Logging.Format = renameFlags.LogFormat
	}
	if renameFlags.LogLevel != "" {
		cfg.Logging.Level = renameFlags.LogLevel
	}

	// Quiet wins over verbose; both disable/enable the progress bar
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	} else if globalFlags.Verbose {
		cfg.Output.Progress = true
		cfg.Logging.Level = "debug"
	}

	// JSON output must stay a single parseable document
	if cfg.Output.Format == "json" {
		cfg.Output.Progress = false
	}
}

// buildRule assembles the immutable rule for this run from flags and config
func buildRule(cmd *cobra.Command, cfg *config.Config) (models.RenameRule, error) {
	rule := models.RenameRule{
		Prefix:    renameFlags.Prefix,
		Suffix:    renameFlags.Suffix,
		Search:    renameFlags.Search,
		Replace:   renameFlags.Replace,
		Pattern:   cfg.Rename.Pattern,
		Recursive: !renameFlags.NoRecursive,
	}

	if renameFlags.Number {
		rule.Numbering = &models.Numbering{
			Mode:    models.NumberingMode(cfg.Rename.NumberMode),
			Start:   cfg.Rename.NumberStart,
			Padding: cfg.Rename.NumberPadding,
		}
	}

	if renameFlags.Date != "" {
		rule.Date = &models.DateInsertion{
			Source:   models.DateSource(renameFlags.Date),
			Position: models.DatePosition(cfg.Rename.DatePosition),
		}
	}

	if err := rule.Validate(); err != nil {
		return models.RenameRule{}, err
	}

	return rule, nil
}

// createOperation creates a rename operation for this run
func createOperation(rootPath string, rule models.RenameRule) (*models.RenameOperation, error) {
	operation := &models.RenameOperation{
		ID:        uuid.New().String(),
		RootPath:  rootPath,
		Rule:      rule,
		Execute:   renameFlags.Execute,
		CreatedAt: time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}
