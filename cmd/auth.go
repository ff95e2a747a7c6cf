package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage remote-collaborator credentials",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app), newAuthShowCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var key string
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.secretStore.Put(cmd.Context(), key, value)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Credential key (generator/token|mirror/key)")
	cmd.Flags().StringVar(&value, "value", "", "Credential value")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a stored credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.secretStore.Delete(cmd.Context(), key)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Credential key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newAuthShowCmd(app *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Check whether a credential is configured",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.secretStore.Get(cmd.Context(), key); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not configured\n", key)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: configured\n", key)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Credential key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
