package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/internal/config"
)

// NewConfigInitCmd creates the config init command. By default it writes a
// project-local .slidekit/config.yaml in the current directory; --global
// writes the user-level config instead. Existing files are never overwritten
// without --force.
func NewConfigInitCmd() *cobra.Command {
	var (
		global bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := initTargetPath(global)
			if err != nil {
				return err
			}

			if _, statErr := os.Stat(path); statErr == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if err := cfg.Save(path); err != nil {
				return err
			}

			if !global {
				created, gitignoreErr := config.EnsureGitignore(filepath.Dir(path))
				if gitignoreErr != nil {
					logger.Warn().Err(gitignoreErr).Msg("could not write .gitignore")
				} else if created {
					fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", filepath.Join(filepath.Dir(path), ".gitignore"))
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "write the user-level config instead of project-local")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

// initTargetPath resolves where config init should write.
func initTargetPath(global bool) (string, error) {
	if global {
		return config.GetConfigPath()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}
	return filepath.Join(cwd, ".slidekit", "config.yaml"), nil
}
