package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfmartin/renamebatch/pkg/collect"
	"github.com/jfmartin/renamebatch/pkg/config"
	"github.com/jfmartin/renamebatch/pkg/logging"
	"github.com/jfmartin/renamebatch/pkg/output"
	"github.com/jfmartin/renamebatch/pkg/rename"
)

// RenameFlags holds rename command flags
type RenameFlags struct {
	Prefix        string
	Suffix        string
	Search        string
	Replace       string
	Number        bool
	NumberMode    string
	NumberStart   int
	NumberPadding int
	Date          string
	DatePosition  string
	Pattern       string
	NoRecursive   bool
	Execute       bool
	Output        string
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var renameFlags RenameFlags

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename PATH",
		Short: "Batch rename files under a directory",
		Long: `Rename files under a root directory according to composable rules:
prefix, suffix, regex search/replace, sequential or append numbering, and
date insertion. Without --execute nothing is touched; a preview of every
rename is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runRename,
	}

	cmd.Flags().StringVar(&renameFlags.Prefix, "prefix", "", "add prefix to filenames")
	cmd.Flags().StringVar(&renameFlags.Suffix, "suffix", "", "add suffix to filenames (before extension)")
	cmd.Flags().StringVar(&renameFlags.Search, "search", "", "search pattern (supports regex)")
	cmd.Flags().StringVar(&renameFlags.Replace, "replace", "", "replacement string (use with --search)")
	cmd.Flags().BoolVar(&renameFlags.Number, "number", false, "enable numbering")
	cmd.Flags().StringVar(&renameFlags.NumberMode, "number-mode", "", "numbering mode: 'sequential' replaces the name, 'append' adds the number at the end (default append)")
	cmd.Flags().IntVar(&renameFlags.NumberStart, "number-start", 0, "starting number (default 1)")
	cmd.Flags().IntVar(&renameFlags.NumberPadding, "number-padding", -1, "zero-padding width (default 3, e.g. 001)")
	cmd.Flags().StringVar(&renameFlags.Date, "date", "", "add date to filename: modified, created, current")
	cmd.Flags().StringVar(&renameFlags.DatePosition, "date-position", "", "where to add the date: prefix, suffix (default prefix)")
	cmd.Flags().StringVar(&renameFlags.Pattern, "pattern", "", "file pattern to match (default *), e.g. *.jpg")
	cmd.Flags().BoolVar(&renameFlags.NoRecursive, "no-recursive", false, "don't process subdirectories")
	cmd.Flags().BoolVar(&renameFlags.Execute, "execute", false, "actually perform the rename (default is dry-run)")
	cmd.Flags().StringVarP(&renameFlags.Output, "output", "o", "", "output format: human, json")

	// Logging flags
	cmd.Flags().StringVar(&renameFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&renameFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&renameFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rootPath := args[0]

	// Usage errors are caught before any filesystem mutation
	if err := validateRenameFlags(cmd); err != nil {
		return err
	}

	// Load configuration (defaults only; flags win)
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, cfg)

	rule, err := buildRule(cmd, cfg)
	if err != nil {
		return err
	}

	operation, err := createOperation(rootPath, rule)
	if err != nil {
		return err
	}

	// The collector validates the root before anything else happens
	collector, err := collect.New(rootPath, rule.Pattern, rule.Recursive)
	if err != nil {
		return err
	}

	generator, err := rename.NewGenerator(rule)
	if err != nil {
		return err
	}

	// Create output formatter
	var formatter output.Formatter
	switch cfg.Output.Format {
	case "json":
		formatter = output.NewJSONFormatter()
	default:
		if cfg.Output.Progress && !cfg.Output.Quiet {
			formatter = output.NewProgressFormatter()
		} else {
			formatter = output.NewHumanFormatter(cfg.Output.Quiet)
		}
	}

	// Create logger
	logger, err := createLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	engine := rename.NewEngine(collector, generator, formatter, logger, operation)

	report, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("rename failed: %w", err)
	}

	logger.Close()
	os.Exit(report.Status.ExitCode())
	return nil
}

// createLogger creates a logger based on configuration
func createLogger(cfg config.LoggingConfig) (logging.Logger, error) {
	if cfg.File == "" {
		return logging.NewNullLogger(), nil
	}

	var format logging.Format
	switch cfg.Format {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:    cfg.File,
		Format:  format,
		Level:   logging.ParseLevel(cfg.Level),
		MaxSize: 10 * 1024 * 1024,
	})
}
