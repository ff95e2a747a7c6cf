package cmd

import (
	"fmt"

	"github.com/nemesix/nemesis-cli/internal/application"
	"github.com/spf13/cobra"
)

func newSurrenderCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "surrender",
		Short: "Try to give up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), application.SurrenderLine)
			return err
		},
	}
}
