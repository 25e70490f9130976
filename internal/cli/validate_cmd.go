package cli

import (
	"context"
	"fmt"

	"github.com/Janjiran/workoutkit/internal/cli/formatter"
	"github.com/Janjiran/workoutkit/internal/workout"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.json>",
		Short: "Parse and validate a workout configuration",
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

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("valid:"),
				formatter.Summary(def))
			return nil
		},
	}
}
