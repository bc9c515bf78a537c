package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/umlgen/internal/domain"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDiagram(w io.Writer, diagram domain.DiagramView) error {
	header := fmt.Sprintf("# %s", diagram.View)
	if !diagram.GenerationCost.IsZero() {
		header += fmt.Sprintf(" (%s tokens)", diagram.GenerationCost.TotalCompact())
	}
	if diagram.ArtifactPath != "" {
		header += " -> " + diagram.ArtifactPath
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", header, strings.TrimRight(diagram.Markup, "\n"))
	return err
}

func writeReferenceIssues(w io.Writer, issues []domain.ReferenceIssue) error {
	for _, issue := range issues {
		if _, err := fmt.Fprintf(w, "warning: %s\n", issue); err != nil {
			return err
		}
	}
	return nil
}

func parseViews(raw []string) ([]domain.ViewID, error) {
	views := make([]domain.ViewID, 0, len(raw))
	for _, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		view, err := domain.ParseViewID(value)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
