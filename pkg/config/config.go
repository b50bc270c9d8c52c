package config

// Config represents the application configuration.
// The file only supplies defaults; command-line flags always win, and a
// missing config file changes no behavior.
type Config struct {
	Rename  RenameConfig  `yaml:"rename"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenameConfig holds default values for rename options
type RenameConfig struct {
	Pattern       string `yaml:"pattern"`        // glob filter, e.g. "*" or "*.jpg"
	NumberMode    string `yaml:"number_mode"`    // "sequential" or "append"
	NumberStart   int    `yaml:"number_start"`   // first counter value
	NumberPadding int    `yaml:"number_padding"` // zero-padding width
	DatePosition  string `yaml:"date_position"`  // "prefix" or "suffix"
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // show a progress bar during the pass
	Quiet    bool   `yaml:"quiet"`    // suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "text" or "json"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // log file path (empty = logging disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Rename: RenameConfig{
			Pattern:       "*",
			NumberMode:    "append",
			NumberStart:   1,
			NumberPadding: 3,
			DatePosition:  "prefix",
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
			File:   "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validModes := map[string]bool{"sequential": true, "append": true}
	if !validModes[c.Rename.NumberMode] {
		return &ConfigError{
			Field:   "rename.number_mode",
			Message: "must be 'sequential' or 'append'",
		}
	}

	if c.Rename.NumberPadding < 0 {
		return &ConfigError{
			Field:   "rename.number_padding",
			Message: "must not be negative",
		}
	}

	validPositions := map[string]bool{"prefix": true, "suffix": true}
	if !validPositions[c.Rename.DatePosition] {
		return &ConfigError{
			Field:   "rename.date_position",
			Message: "must be 'prefix' or 'suffix'",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &ConfigError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.Logging.Format] {
		return &ConfigError{
			Field:   "logging.format",
			Message: "must be 'text' or 'json'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &ConfigError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
