package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Janjiran/workoutkit/internal/cli/formatter"
	"github.com/Janjiran/workoutkit/internal/workout"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <config.json>",
		Short: "Export the normalized plan definition as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := workout.LoadConfig(args[0])
			if err != nil {
				return err
			}

			if out == "" {
				return app.Plans.Export(context.Background(), cfg, cmd.OutOrStdout())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := app.Plans.Export(context.Background(), cfg, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("exported:"), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
