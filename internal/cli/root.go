package cli

import (
	"github.com/Janjiran/workoutkit/internal/capability"
	"github.com/Janjiran/workoutkit/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and collaborators used by CLI
// commands.
type App struct {
	Plans service.PlanService
	Auth  capability.Authorizer

	// IsInteractive reports whether stdin/stdout are attached to a
	// terminal; non-interactive runs never open the preview viewer.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "workoutkit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "workoutkit",
		Short: "Parse, preview, and schedule workout plans",
	}

	root.AddCommand(
		newValidateCmd(app),
		newPreviewCmd(app),
		newScheduleCmd(app),
		newListCmd(app),
		newRemoveCmd(app),
		newExportCmd(app),
		newAuthCmd(app),
	)

	return root
}
