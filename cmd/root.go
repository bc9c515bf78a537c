package cmd

import "github.com/spf13/cobra"

const defaultSession = "default"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var session string

	rootCmd := &cobra.Command{
		Use:           "umlgen",
		Short:         "umlgen: one canonical system model, many UML views",
		Long:          "umlgen asks a language model once for a canonical model of a system, stores it per session and renders any supported UML view from it without calling the model again.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&session, "session", defaultSession, "Session identifier")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	app.session = &session
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.closeStores()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(app),
		newViewCmd(app),
		newModelCmd(app),
		newHistoryCmd(app),
		newFeedbackCmd(app),
		newAuthCmd(app),
	)

	return rootCmd
}
