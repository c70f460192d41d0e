package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gl",
		Short:         "Guard Limiter CLI (gl): restrict SGuard load from the terminal",
		Long:          "gl (Guard Limiter CLI) drives a local enforcement agent to pin anti-cheat scanner processes to a single core, run monitoring sessions with a 60 second enforcement cadence, and watch the affected processes from the terminal.",
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

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newOnceCmd(app),
		newInfoCmd(app),
		newTopCmd(app),
		newConfigCmd(),
	)

	return rootCmd
}
