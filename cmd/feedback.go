package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/umlgen/internal/application"
	"github.com/bnema/umlgen/internal/domain"
)

func newFeedbackCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record and export judgments on rendered diagrams",
	}

	cmd.AddCommand(newFeedbackSubmitCmd(app), newFeedbackListCmd(app), newFeedbackExportCmd(app))

	return cmd
}

func newFeedbackSubmitCmd(app *app) *cobra.Command {
	var index int
	var judgment string
	var comment string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Judge a diagram of the session by its history index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseJudgment(judgment)
			if err != nil {
				return err
			}

			feedback, err := app.feedback.Submit(cmd.Context(), application.SubmitFeedbackCommand{
				Session:      app.currentSession(),
				DiagramIndex: index,
				Judgment:     parsed,
				Comment:      comment,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "feedback %s stored (reward %+.0f)\n", feedback.ID, feedback.Reward)
			return err
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Diagram index as shown by history show")
	cmd.Flags().StringVar(&judgment, "judgment", "", "thumbs_up or thumbs_down")
	cmd.Flags().StringVar(&comment, "comment", "", "Optional comment")
	_ = cmd.MarkFlagRequired("judgment")

	return cmd
}

func newFeedbackListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored feedback",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.feedback.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				if entries == nil {
					entries = []domain.Feedback{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, err := fmt.Fprintln(out, "no feedback")
				return err
			}
			for _, entry := range entries {
				if _, err := fmt.Fprintf(out, "%s  %s  %s[%d] %s %+.0f\n",
					entry.ID, entry.StoredAt.Local().Format("2006-01-02 15:04"), entry.SessionID, entry.DiagramIndex, entry.View, entry.Reward); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newFeedbackExportCmd(app *app) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all feedback as a training dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exportFormat, err := application.ParseExportFormat(format)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := app.feedback.Export(cmd.Context(), cmd.OutOrStdout(), exportFormat)
				return err
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}

			count, err := app.feedback.Export(cmd.Context(), file, exportFormat)
			if closeErr := file.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("close export file: %w", closeErr)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d feedback entries to %s\n", count, output)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(application.ExportFormatJSON), "Export format (json|yaml)")
	cmd.Flags().StringVar(&output, "output", "training_data.json", "Output file (- writes to stdout)")

	return cmd
}
