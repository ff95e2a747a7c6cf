package cmd

import (
	"github.com/nemesix/nemesis-cli/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the live dashboard",
		Long:  "Runs the interactive session view. With no rival yet it walks you through summoning one; otherwise it shows the live scoreboard while your nemesis keeps scoring.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Restore(cmd.Context()); err != nil {
				return err
			}

			return dashboard.Run(cmd.Context(), app.service, app.engine, cmd.OutOrStdout())
		},
	}
}
