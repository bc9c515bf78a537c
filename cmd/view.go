package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/umlgen/internal/application"
	"github.com/bnema/umlgen/internal/domain"
)

func newViewCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "List views and switch between them",
	}

	cmd.AddCommand(newViewListCmd(app), newViewTypesCmd(app), newViewSwitchCmd(app))

	return cmd
}

func newViewListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the views that can be rendered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, view := range app.service.SupportedViews() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), view); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type viewType struct {
	View      domain.ViewID       `json:"view"`
	Category  domain.ViewCategory `json:"category"`
	Supported bool                `json:"supported"`
}

func newViewTypesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List every UML diagram type and whether it can be rendered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := domain.AllViews()
			types := make([]viewType, 0, len(all))
			for _, view := range all {
				types = append(types, viewType{View: view, Category: view.Category(), Supported: app.service.Supports(view)})
			}

			if asJSON {
				return writeJSON(cmd, types)
			}
			for _, t := range types {
				marker := " "
				if t.Supported {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %-22s %s\n", marker, t.View, t.Category); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newViewSwitchCmd(app *app) *cobra.Command {
	var persist bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "switch <view>",
		Short: "Render another view of the stored model without generating again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := domain.ParseViewID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			session := app.currentSession()
			diagram, found, err := app.service.RenderView(ctx, application.RenderViewCommand{
				Session: session,
				View:    view,
				Persist: persist,
			})
			if err != nil {
				return err
			}
			if !found {
				return application.NoModelError(session)
			}

			if err := app.history.RecordRequest(ctx, session, fmt.Sprintf("switch to %s view", view), []domain.ViewID{view}); err != nil {
				return err
			}
			if err := app.history.RecordResponses(ctx, session, diagram); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, diagram)
			}
			return writeDiagram(cmd.OutOrStdout(), diagram)
		},
	}

	cmd.Flags().BoolVar(&persist, "persist", false, "Write a PNG through the PlantUML server")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
