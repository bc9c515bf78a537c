package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/umlgen/internal/domain"
)

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the session conversation",
	}

	cmd.AddCommand(newHistoryShowCmd(app), newHistoryClearCmd(app))

	return cmd
}

func newHistoryShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show requests and rendered diagrams, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.history.History(cmd.Context(), app.currentSession())
			if err != nil {
				return err
			}

			if asJSON {
				if entries == nil {
					entries = []domain.HistoryEntry{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, err := fmt.Fprintln(out, "no history")
				return err
			}

			diagram := 0
			for _, entry := range entries {
				line := historyLine(entry, diagram)
				if entry.Kind == domain.HistoryResponse {
					diagram++
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// historyLine prints responses with the index feedback submit expects.
func historyLine(entry domain.HistoryEntry, diagramIndex int) string {
	at := entry.Timestamp.Local().Format(time.DateTime)
	if entry.Kind == domain.HistoryResponse {
		line := fmt.Sprintf("%s  [%d] %s diagram", at, diagramIndex, entry.View)
		if entry.ArtifactPath != "" {
			line += " -> " + entry.ArtifactPath
		}
		return line
	}

	target := "edit"
	if !entry.IsEdit() {
		names := make([]string, 0, len(entry.Views))
		for _, view := range entry.Views {
			names = append(names, string(view))
		}
		target = strings.Join(names, ",")
	}
	return fmt.Sprintf("%s  > (%s) %s", at, target, entry.Prompt)
}

func newHistoryClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the session conversation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.currentSession()
			if err := app.history.Clear(cmd.Context(), session); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "history cleared for session %s\n", session)
			return err
		},
	}
}
