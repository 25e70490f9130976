package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Janjiran/workoutkit/internal/cli/formatter"
	"github.com/Janjiran/workoutkit/internal/domain"
	"github.com/Janjiran/workoutkit/internal/workout"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "schedule <config.json>",
		Short: "Validate a workout and schedule it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseScheduleDate(at)
			if err != nil {
				return err
			}

			cfg, err := workout.LoadConfig(args[0])
			if err != nil {
				return err
			}

			plan, err := app.Plans.Schedule(context.Background(), cfg, when)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				formatter.StyleGreen.Render("scheduled:"),
				formatter.StyleDim.Render(plan.ID[:8]),
				formatter.Summary(plan.Definition),
				formatter.StyleDim.Render("at "+formatter.FormatSchedule(plan.ScheduledAt)))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", `Schedule date, "YYYY-MM-DD" or "YYYY-MM-DD HH:MM"`)
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

// parseScheduleDate accepts a date with an optional time of day and
// returns the calendar components passed through to the scheduler.
func parseScheduleDate(input string) (domain.DateComponents, error) {
	t, err := time.Parse("2006-01-02 15:04", input)
	if err != nil {
		t, err = time.Parse("2006-01-02", input)
	}
	if err != nil {
		return domain.DateComponents{}, fmt.Errorf("invalid schedule date %q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM)", input)
	}
	return domain.DateComponents{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}, nil
}
