package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/internal/catalog"
	"github.com/slidekit/slidekit/internal/config"
)

// NewConfigValidateCmd creates the config validate command. It checks the
// effective configuration (global plus project overlay) and, when a catalog
// path is configured, the catalog contents.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration and catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.NewWithProjectDir(ctx, config.GetResolvedProjectDir())

			findings := cfg.Validate()

			if cfg.Catalog.Path != "" {
				products, err := catalog.Load(ctx, cfg.Catalog.Path)
				if err != nil {
					findings = append(findings, err)
				} else {
					findings = append(findings, catalog.Validate(products)...)
				}
			}

			if len(findings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
				return nil
			}

			for _, finding := range findings {
				fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", finding)
			}
			return fmt.Errorf("configuration has %d problem(s)", len(findings))
		},
	}
}

// NewConfigPathCmd creates the config path command, printing the effective
// config file locations.
func NewConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print configuration file locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			globalPath, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "global:  %s\n", globalPath)

			if projectDir := config.GetResolvedProjectDir(); projectDir != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "project: %s\n", filepath.Join(projectDir, "config.yaml"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "project: (none found)")
			}
			return nil
		},
	}
}
