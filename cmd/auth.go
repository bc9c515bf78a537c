package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the generation API key",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var secretValue string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the generation API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value := secretValue
			if fromStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read api key from stdin: %w", err)
				}
				value = line
			}
			value = strings.TrimSpace(value)
			if value == "" {
				return errors.New("api key is empty")
			}

			key := app.cfg.Generation.APIKeyRef
			if err := app.secretStore.Put(cmd.Context(), key, value); err != nil {
				return fmt.Errorf("store api key: %w", err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "api key stored as %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&secretValue, "secret-value", "", "API key value")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the API key from stdin")
	cmd.MarkFlagsMutuallyExclusive("secret-value", "stdin")
	cmd.MarkFlagsOneRequired("secret-value", "stdin")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored generation API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := app.cfg.Generation.APIKeyRef
			if err := app.secretStore.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("remove api key: %w", err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "api key %s removed\n", key)
			return err
		},
	}
}
