package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/slidekit/slidekit/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the slidekit CLI. It wires
// up logging, project discovery, and the demo and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *loggingResult

	cmd := &cobra.Command{
		Use:     "slidekit",
		Short:   "Terminal card carousel toolkit",
		Long:    "SlideKit: a responsive, animated card carousel for the terminal, with a product catalog demo",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			projectFlag, _ := cmd.Flags().GetString("project-dir")
			cwd, err := os.Getwd()
			if err != nil {
				cwd = "."
			}
			projectDir := config.ResolveProjectDir(cmd.Context(), projectFlag, cwd)
			config.SetResolvedProjectDir(projectDir)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("project-dir", "", "project directory containing .slidekit/ (default: walk up from cwd)")
	cmd.AddCommand(newDemoCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse the built-in sample catalog
  slidekit demo

  # Browse a catalog file or directory
  slidekit demo --catalog ./products.yaml

  # Render one static frame (no TTY required)
  slidekit demo --static --width 120

  # Initialize project-local configuration
  slidekit config init

  # Initialize global configuration
  slidekit config init --global

  # Validate configuration and catalog
  slidekit config validate`

// newConfigCmd creates the config command group with configuration
// subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigPathCmd())
	return cmd
}
