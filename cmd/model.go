package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	summaryadapter "github.com/bnema/umlgen/internal/adapters/render/summary"
	"github.com/bnema/umlgen/internal/application"
	"github.com/bnema/umlgen/internal/domain"
)

func newModelCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect and edit the stored session model",
	}

	cmd.AddCommand(
		newModelShowCmd(app),
		newModelImportCmd(app),
		newModelUpdateCmd(app),
		newModelDeleteCmd(app),
		newModelCheckCmd(app),
	)

	return cmd
}

func newModelShowCmd(app *app) *cobra.Command {
	var asJSON bool
	var maxIssues int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize the stored model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := loadModelSummary(cmd, app)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, summary.Model)
			}

			rendered, err := app.summaryRenderer(summary, summaryadapter.RenderOptions{MaxIssues: maxIssues})
			if err != nil {
				return fmt.Errorf("render model summary: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the model as JSON")
	cmd.Flags().IntVar(&maxIssues, "max-issues", 10, "Reference issues to list (0 lists all)")

	return cmd
}

func newModelImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Store a model from a JSON or YAML file (- reads JSON from stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if isYAMLPath(args[0]) {
				if data, err = yamlToJSON(data); err != nil {
					return err
				}
			}

			model, err := domain.DecodeModel(data)
			if err != nil {
				return fmt.Errorf("%w: decode model: %w", domain.ErrValidation, err)
			}

			session := app.currentSession()
			issues, err := app.service.ImportModel(cmd.Context(), session, model)
			if err != nil {
				return err
			}

			if err := writeReferenceIssues(cmd.ErrOrStderr(), issues); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "model imported for session %s\n", session)
			return err
		},
	}
}

func newModelUpdateCmd(app *app) *cobra.Command {
	var field string
	var value string
	var file string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace top-level fields of the stored model",
		Long:  "update replaces whole top-level fields. Use --field with --value for one field, or --file with a JSON object keyed by field name.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			patch, err := buildPatch(cmd, field, value, file)
			if err != nil {
				return err
			}

			session := app.currentSession()
			applied, err := app.service.UpdateModel(cmd.Context(), session, patch)
			if err != nil {
				return err
			}
			if !applied {
				return application.NoModelError(session)
			}

			fields := make([]string, 0, len(patch.Fields()))
			for _, f := range patch.Fields() {
				fields = append(fields, string(f))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", strings.Join(fields, ", "))
			return err
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "Top-level field to replace (e.g. entities)")
	cmd.Flags().StringVar(&value, "value", "", "JSON value for --field")
	cmd.Flags().StringVar(&file, "file", "", "JSON object of fields to replace (- reads stdin)")
	cmd.MarkFlagsRequiredTogether("field", "value")
	cmd.MarkFlagsMutuallyExclusive("field", "file")
	cmd.MarkFlagsOneRequired("field", "file")

	return cmd
}

func newModelDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the stored model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.currentSession()
			if err := app.service.DeleteModel(cmd.Context(), session); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "model deleted for session %s\n", session)
			return err
		},
	}
}

func newModelCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report duplicate and unresolved ids in the stored model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := loadModelSummary(cmd, app)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summary.ReferenceIssues) == 0 {
				_, err := fmt.Fprintln(out, "all references resolve")
				return err
			}
			for _, issue := range summary.ReferenceIssues {
				if _, err := fmt.Fprintln(out, issue); err != nil {
					return err
				}
			}
			return fmt.Errorf("%w: %d issue(s)", domain.ErrReferentialIntegrity, len(summary.ReferenceIssues))
		},
	}
}

func loadModelSummary(cmd *cobra.Command, app *app) (application.ModelSummary, error) {
	session := app.currentSession()
	summary, found, err := app.service.Model(cmd.Context(), session)
	if err != nil {
		return application.ModelSummary{}, err
	}
	if !found {
		return application.ModelSummary{}, application.NoModelError(session)
	}
	return summary, nil
}

func buildPatch(cmd *cobra.Command, field, value, file string) (domain.ModelPatch, error) {
	if file != "" {
		data, err := readInput(cmd, file)
		if err != nil {
			return domain.ModelPatch{}, err
		}
		return domain.PatchFromJSON(data)
	}

	modelField, err := domain.ParseModelField(field)
	if err != nil {
		return domain.ModelPatch{}, err
	}
	return domain.PatchField(modelField, []byte(value))
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// yamlToJSON lets YAML models reuse the JSON field names and decoding.
func yamlToJSON(data []byte) ([]byte, error) {
	var generic any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: decode yaml model: %w", domain.ErrValidation, err)
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("%w: convert yaml model: %w", domain.ErrValidation, err)
	}
	return out, nil
}
