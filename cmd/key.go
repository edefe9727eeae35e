package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newKeyCmd(app *app) *cobra.Command {
	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the Gemini API key sent to the game server",
	}

	keyCmd.AddCommand(
		newKeySetCmd(app),
		newKeyShowCmd(app),
		newKeyClearCmd(app),
	)

	return keyCmd
}

func newKeySetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <value>",
		Short: "Store the API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.credentials.SetCredential(cmd.Context(), strings.TrimSpace(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API key stored")
			return err
		},
	}
}

func newKeyShowCmd(app *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored API key (masked unless --reveal)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := app.credentials.Credential(cmd.Context())
			if err != nil {
				return err
			}
			if value == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no API key set")
				return err
			}

			if !reveal {
				value = maskSecret(value)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the full key")
	return cmd
}

func newKeyClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.ClearCredential(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return err
		},
	}
}

func maskSecret(value string) string {
	runes := []rune(value)
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:4]) + strings.Repeat("*", len(runes)-8) + string(runes[len(runes)-4:])
}
