package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/internal/config"
	"github.com/slidekit/slidekit/internal/logging"
)

// Environment overrides for log settings.
const (
	envLogLevel  = "SLIDEKIT_LOG_LEVEL"
	envLogFormat = "SLIDEKIT_LOG_FORMAT"
)

type loggingResult = logging.Result

// setupLogging configures logging based on config file, environment, and
// CLI flags, and installs the logger on the command context.
func setupLogging(cmd *cobra.Command) logging.Result {
	loggingCfg := config.GetGlobalConfig().Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.Output = logging.OutputStderr
		loggingCfg.File = ""
	}

	if envLevel := os.Getenv(envLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}
	if envFormat := os.Getenv(envLogFormat); envFormat != "" {
		loggingCfg.Format = envFormat
	}

	// Ensure the log directory exists after all overrides have been applied.
	if loggingCfg.Output == logging.OutputFile {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLogger(loggingCfg.ToLoggerConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := logging.WithContext(cmd.Context(), result.Logger)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *loggingResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
