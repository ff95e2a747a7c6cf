package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTauntCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "taunt",
		Short: "Hear from your nemesis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Restore(cmd.Context()); err != nil {
				return err
			}
			defer app.service.Flush()

			taunt, err := runTauntFetchSpinner(cmd.Context(), cmd.OutOrStdout(), func(ctx context.Context) string {
				return app.service.SelectTaunt(ctx, force)
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%q\n", taunt)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Always attempt remote generation")

	return cmd
}
