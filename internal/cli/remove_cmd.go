package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Janjiran/workoutkit/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// resolvePlanID resolves a full plan ID or unambiguous ID prefix.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan ID is required")
	}

	plans, err := app.Plans.ListScheduled(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range plans {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range plans {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	var all, force bool

	cmd := &cobra.Command{
		Use:   "remove [plan-id]",
		Short: "Remove a scheduled plan, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if all {
				if !force {
					confirmed, err := confirmRemoveAll(app)
					if err != nil {
						return err
					}
					if !confirmed {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render("cancelled"))
						return nil
					}
				}
				if err := app.Plans.RemoveAll(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("removed all scheduled plans"))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("plan ID is required (or use --all)")
			}
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("removed:"),
				formatter.StyleDim.Render(id[:8]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every scheduled plan")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

func confirmRemoveAll(app *App) (bool, error) {
	// Without a terminal there is nobody to ask; require --force.
	if !app.interactive() {
		return false, fmt.Errorf("refusing to remove all plans without confirmation (use --force)")
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remove ALL scheduled plans?").
				Affirmative("Remove").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
