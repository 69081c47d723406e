// Package logging provides zerolog-based structured logging for slidekit.
//
// Because the interactive TUI owns the terminal, file output is the primary
// sink while a carousel is running; console output is used for plain CLI
// invocations and as a fallback when the log file cannot be opened.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Output sink names accepted in Config.Output.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Format names accepted in Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how the application logger should be constructed.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string

	// Format selects console (human-readable) or json output.
	Format string

	// Output selects the sink: "stderr" or "file".
	Output string

	// File is the log file path, used when Output is "file".
	File string

	// Caller enables caller annotation on every event.
	Caller bool
}

// Result holds the constructed logger together with sink metadata so the
// CLI can report where logs are going and close the file handle on exit.
type Result struct {
	Logger zerolog.Logger

	// UsingFile is true when log output goes to FilePath.
	UsingFile bool

	// FilePath is the resolved log file path when UsingFile is true.
	FilePath string

	// FallbackUsed is true when file output was requested but unavailable
	// and the logger fell back to stderr.
	FallbackUsed bool

	// FallbackReason describes why the fallback was taken.
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a zerolog.Logger from cfg.
//
// File output failures never fail the caller: the logger degrades to stderr
// and the Result records the reason.
func NewLogger(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var (
		w      io.Writer
		result Result
	)

	if cfg.Output == OutputFile && cfg.File != "" {
		file, openErr := openLogFile(cfg.File)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
			w = consoleWriter()
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
			w = file
		}
	} else if cfg.Format == FormatJSON {
		w = os.Stderr
	} else {
		w = consoleWriter()
	}

	// File output stays JSON unless console format is requested explicitly.
	if cfg.Format == FormatConsole && result.UsingFile {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	logCtx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	result.Logger = logCtx.Logger()

	return result
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where log output is being written.
func PrintLogPathMessage(w io.Writer, path string) {
	fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user that file logging was unavailable.
func PrintFallbackWarning(w io.Writer, reason string) {
	fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}

// consoleWriter returns the human-readable stderr writer.
func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
}

// openLogFile opens path for appending, creating parent directories as needed.
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating log directory %q: %w", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", path, err)
	}
	return file, nil
}
