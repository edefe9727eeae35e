package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
)

func Execute() error {
	return run(newRootCmd())
}

// run executes root and then closes the app, whether or not the command
// succeeded.
func run(root *cobra.Command, closeApp func() error) error {
	err := root.Execute()
	if closeErr := closeApp(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

// newRootCmd returns the command tree and the func that releases the app
// behind it.
func newRootCmd() (*cobra.Command, func() error) {
	rootCmd := &cobra.Command{
		Use:           "prison",
		Short:         "THE DIGITAL PRISON terminal client",
		Long:          "prison is a terminal client for THE DIGITAL PRISON, an interactive fiction game whose narrative runs on a remote server. Run `prison play` for the interactive session, or use the one-shot commands to drive a single request.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	var debug bool
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to the client log file")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, func() error { return nil }
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if debug {
			app.logLevel.Set(slog.LevelDebug)
		}
	}
	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newInitCmd(app),
		newSendCmd(app),
		newHintCmd(app),
		newSaveCmd(app),
		newLoadCmd(app),
		newPingCmd(app),
		newForgetCmd(app),
		newKeyCmd(app),
	)

	return rootCmd, app.Close
}
