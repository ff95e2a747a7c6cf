package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nemesis",
		Short:         "The Nemesis: a rival that never stops moving",
		Long:          "nemesis pits you against an artificial rival. Summon one with a goal and a weakness, log work to stay ahead, and watch it taunt you while its score climbs on a timer.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.logLevel.SetLevel(zapcore.DebugLevel)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSummonCmd(app),
		newWorkCmd(app),
		newTauntCmd(app),
		newStatusCmd(app),
		newResetCmd(app),
		newSurrenderCmd(app),
		newAuthCmd(app),
		newRunCmd(app),
	)

	return rootCmd
}
