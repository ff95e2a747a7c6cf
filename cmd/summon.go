package cmd

import (
	"fmt"
	"strings"

	"github.com/nemesix/nemesis-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSummonCmd(app *app) *cobra.Command {
	var goal string
	var insecurity string
	var persona string

	cmd := &cobra.Command{
		Use:   "summon",
		Short: "Summon a nemesis for a goal",
		Long:  "Creates your rival. It starts with a head start and gains a point on a timer from the moment it exists.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Restore(cmd.Context()); err != nil {
				return err
			}

			personaID, err := parsePersona(persona)
			if err != nil {
				return err
			}

			session, err := app.service.Summon(cmd.Context(), goal, insecurity, personaID)
			if err != nil {
				return err
			}
			defer app.service.Flush()

			name := domain.DisplayName(session.NemesisType)
			fmt.Fprintf(cmd.OutOrStdout(), "%s has been summoned.\n", name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d  You: %d\n", name, session.NemesisScore, session.UserScore)

			taunt := app.service.SelectTaunt(cmd.Context(), true)
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", taunt)

			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "What you want to achieve")
	cmd.Flags().StringVar(&insecurity, "insecurity", "", "What you fear holds you back")
	cmd.Flags().StringVar(&persona, "persona", "", "Rival persona (perfectionist|natural|grinder)")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("insecurity")
	_ = cmd.MarkFlagRequired("persona")

	return cmd
}

func parsePersona(raw string) (domain.PersonaID, error) {
	id := domain.PersonaID(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := domain.PersonaByID(id); !ok {
		return "", fmt.Errorf("unsupported persona %q (perfectionist|natural|grinder)", raw)
	}
	return id, nil
}
