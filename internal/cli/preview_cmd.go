package cli

import (
	"context"
	"fmt"

	"github.com/Janjiran/workoutkit/internal/cli/formatter"
	"github.com/Janjiran/workoutkit/internal/workout"
	"github.com/spf13/cobra"
)

func newPreviewCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "preview <config.json>",
		Short: "Preview a workout plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := workout.LoadConfig(args[0])
			if err != nil {
				return err
			}

			def, err := app.Plans.Validate(context.Background(), cfg)
			if err != nil {
				return err
			}

			rendered := formatter.FormatDefinition(def)
			if plain || !app.interactive() {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			return runPreview(rendered)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the preview instead of opening the viewer")

	return cmd
}
