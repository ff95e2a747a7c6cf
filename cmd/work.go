package cmd

import (
	"fmt"

	"github.com/nemesix/nemesis-cli/internal/application"
	"github.com/nemesix/nemesis-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "work",
		Short: "Log a unit of work against your nemesis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Restore(cmd.Context()); err != nil {
				return err
			}

			session, err := app.service.LogWork(cmd.Context())
			if err != nil {
				return err
			}
			defer app.service.Flush()

			fmt.Fprintln(cmd.OutOrStdout(), application.WorkAcknowledgement)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d  You: %d\n",
				domain.DisplayName(session.NemesisType), session.NemesisScore, session.UserScore)

			return nil
		},
	}
}
