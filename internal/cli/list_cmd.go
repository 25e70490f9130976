package cli

import (
	"context"
	"fmt"

	"github.com/Janjiran/workoutkit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scheduled workout plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.ListScheduled(context.Background())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render("no scheduled plans"))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.PlanTable(plans))
			return nil
		},
	}
}
