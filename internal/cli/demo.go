package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/internal/catalog"
	"github.com/slidekit/slidekit/internal/config"
	"github.com/slidekit/slidekit/internal/demo"
	"github.com/slidekit/slidekit/internal/logging"
)

// defaultStaticWidth is the container width used for non-TTY rendering when
// --width is not given.
const defaultStaticWidth = 100

// newDemoCmd creates the demo command that runs the interactive catalog
// carousel.
func newDemoCmd() *cobra.Command {
	var (
		catalogPath string
		static      bool
		width       int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse a product catalog in the carousel",
		Long: "Run the interactive catalog browser. Without --catalog, the built-in " +
			"sample catalog is shown. With a non-terminal stdout (or --static), a " +
			"single frame is rendered instead.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.NewWithProjectDir(ctx, config.GetResolvedProjectDir())

			if catalogPath == "" {
				catalogPath = cfg.Catalog.Path
			}

			var products []catalog.Product
			if catalogPath == "" {
				products = catalog.Sample()
			} else {
				loaded, err := catalog.Load(ctx, catalogPath)
				if err != nil {
					return fmt.Errorf("loading catalog: %w", err)
				}
				products = loaded
			}

			for _, validationErr := range catalog.Validate(products) {
				logger.Warn().Err(validationErr).Msg("catalog entry problem")
			}

			model := demo.New(cfg, products, *logging.FromContext(ctx))

			if static || !isTerminal(os.Stdout) {
				if width <= 0 {
					width = defaultStaticWidth
				}
				fmt.Fprintln(cmd.OutOrStdout(), model.StaticView(width))
				return nil
			}

			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running carousel: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog YAML file or directory (default: built-in sample)")
	cmd.Flags().BoolVar(&static, "static", false, "render a single frame and exit")
	cmd.Flags().IntVar(&width, "width", 0, "container width for --static rendering")

	return cmd
}
