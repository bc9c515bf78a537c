package application

import (
	"fmt"
	"strings"

	"github.com/bnema/umlgen/internal/domain"
)

type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
)

func (f ExportFormat) Valid() bool {
	switch f {
	case ExportFormatJSON, ExportFormatYAML:
		return true
	default:
		return false
	}
}

func ParseExportFormat(raw string) (ExportFormat, error) {
	format := ExportFormat(strings.ToLower(strings.TrimSpace(raw)))
	if format == "yml" {
		format = ExportFormatYAML
	}
	if !format.Valid() {
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
	return format, nil
}

type GenerateCommand struct {
	Session domain.SessionID
	Prompt  string
	Views   []domain.ViewID
	// Persist writes an image artifact per rendered view.
	Persist bool
}

// EditCommand refines the stored model with an instruction. Views are
// rendered from the refined model.
type EditCommand struct {
	Session     domain.SessionID
	Instruction string
	Views       []domain.ViewID
	Persist     bool
}

type RenderViewCommand struct {
	Session domain.SessionID
	View    domain.ViewID
	Persist bool
}

type SubmitFeedbackCommand struct {
	Session      domain.SessionID
	DiagramIndex int
	Judgment     domain.Judgment
	Comment      string
}
