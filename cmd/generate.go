package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/umlgen/internal/application"
	"github.com/bnema/umlgen/internal/domain"
)

func newGenerateCmd(app *app) *cobra.Command {
	var rawViews []string
	var persist bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate the session model and render views from it",
		Long: "generate sends the description to the generation endpoint once, stores the resulting model for the session and renders each requested view. " +
			"Without --views the description edits the current model and the last rendered view is rendered again. " +
			"An edit needs a diagram generated earlier in the session.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := parseViews(rawViews)
			if err != nil {
				return err
			}
			return runGenerate(cmd, app, strings.Join(args, " "), views, persist, asJSON)
		},
	}

	cmd.Flags().StringSliceVar(&rawViews, "views", nil, "Views to render (comma separated, e.g. class,sequence)")
	cmd.Flags().BoolVar(&persist, "persist", false, "Write a PNG per view through the PlantUML server")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *app, prompt string, views []domain.ViewID, persist, asJSON bool) error {
	ctx := cmd.Context()
	session := app.currentSession()

	edit := len(views) == 0
	renderViews := views
	if edit {
		last, err := lastRenderedView(ctx, app, session)
		if err != nil {
			return err
		}
		if last == "" {
			return application.ErrNothingToEdit
		}
		renderViews = []domain.ViewID{last}
	}

	var result application.GenerateResult
	generate := func(ctx context.Context) error {
		var err error
		if edit {
			result, err = app.service.Edit(ctx, application.EditCommand{
				Session:     session,
				Instruction: prompt,
				Views:       renderViews,
				Persist:     persist,
			})
			return err
		}
		result, err = app.service.Generate(ctx, application.GenerateCommand{
			Session: session,
			Prompt:  prompt,
			Views:   renderViews,
			Persist: persist,
		})
		return err
	}

	message := "Generating system model..."
	if edit {
		message = "Editing system model..."
	}
	if asJSON {
		if err := generate(ctx); err != nil {
			return err
		}
	} else if err := runWithSpinner(ctx, cmd.ErrOrStderr(), message, generate); err != nil {
		return err
	}

	// Only completed requests reach the history. No views marks an edit.
	if err := app.history.RecordRequest(ctx, session, prompt, views); err != nil {
		return err
	}
	if err := app.history.RecordResponses(ctx, session, result.Views...); err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, result)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "model stored for session %s (%s tokens)\n", session, result.Usage.TotalCompact()); err != nil {
		return err
	}
	if err := writeReferenceIssues(out, result.ReferenceIssues); err != nil {
		return err
	}
	for _, diagram := range result.Views {
		if err := writeDiagram(out, diagram); err != nil {
			return err
		}
	}
	return nil
}

func lastRenderedView(ctx context.Context, app *app, session domain.SessionID) (domain.ViewID, error) {
	entries, err := app.history.History(ctx, session)
	if err != nil {
		return "", err
	}
	_, responses := domain.SplitHistory(entries)
	if len(responses) == 0 {
		return "", nil
	}
	return responses[len(responses)-1].View, nil
}
