package application

import "github.com/bnema/umlgen/internal/domain"

type GenerateResult struct {
	Model           domain.SystemModel
	Views           []domain.DiagramView
	Usage           domain.TokenUsage
	ReferenceIssues []domain.ReferenceIssue
}

type ModelSummary struct {
	Session         domain.SessionID
	Model           domain.SystemModel
	Counts          map[string]int
	AvailableViews  []domain.ViewID
	ReferenceIssues []domain.ReferenceIssue
}
