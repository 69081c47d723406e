package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/slidekit/slidekit/internal/logging"
)

// LoggingConfig holds the log settings section of the config file.
type LoggingConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format,omitempty"`

	// Output is "stderr" or "file".
	Output string `yaml:"output,omitempty"`

	// File is the log file path when Output is "file". Empty means the
	// default location under the config directory.
	File string `yaml:"file,omitempty"`

	// Caller adds the caller file:line to log entries.
	Caller bool `yaml:"caller,omitempty"`
}

// DefaultLoggingConfig returns the logging defaults: info-level console
// output on stderr.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  zerolog.InfoLevel.String(),
		Format: logging.FormatConsole,
		Output: logging.OutputStderr,
	}
}

// ToLoggerConfig converts the YAML settings into the logging package config,
// resolving the default log file location when needed.
func (l LoggingConfig) ToLoggerConfig() logging.Config {
	cfg := logging.Config{
		Level:  l.Level,
		Format: l.Format,
		Output: l.Output,
		File:   l.File,
		Caller: l.Caller,
	}

	if cfg.Output == logging.OutputFile && cfg.File == "" {
		if path, err := GetDefaultLogFile(); err == nil {
			cfg.File = path
		}
	}
	return cfg
}

// Validate reports logging settings that would be silently coerced at
// runtime.
func (l LoggingConfig) Validate() []error {
	var errs []error

	if l.Level != "" {
		if _, err := zerolog.ParseLevel(l.Level); err != nil {
			errs = append(errs, fmt.Errorf("logging.level %q is not a valid level", l.Level))
		}
	}
	switch l.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format must be %q or %q, got %q",
			logging.FormatConsole, logging.FormatJSON, l.Format))
	}
	switch l.Output {
	case "", logging.OutputStderr, logging.OutputFile:
	default:
		errs = append(errs, fmt.Errorf("logging.output must be %q or %q, got %q",
			logging.OutputStderr, logging.OutputFile, l.Output))
	}
	return errs
}
