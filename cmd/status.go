package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/nemesix/nemesis-cli/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the scoreboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Restore(cmd.Context()); err != nil {
				return err
			}
			defer app.service.Flush()

			status := app.service.Status()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}

			rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
