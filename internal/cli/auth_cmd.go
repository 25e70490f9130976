package cli

import (
	"fmt"

	"github.com/Janjiran/workoutkit/internal/capability"
	"github.com/Janjiran/workoutkit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Show scheduling authorization state",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatAuthStatus(app.Auth.Status()))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "request",
		Short: "Request scheduling authorization",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatAuthStatus(app.Auth.Request()))
			return nil
		},
	})

	return cmd
}

func formatAuthStatus(status capability.AuthorizationStatus) string {
	switch status {
	case capability.AuthAuthorized:
		return formatter.StyleGreen.Render("authorized")
	case capability.AuthDenied:
		return formatter.StyleRed.Render("denied")
	default:
		return formatter.StyleYellow.Render("not determined")
	}
}
