package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/umlgen/internal/application"
)

type RenderOptions struct {
	// MaxIssues caps the listed reference issues; zero lists all of them.
	MaxIssues int
}

const barWidth = 20

// collectionOrder fixes the display order of model collections.
var collectionOrder = []struct {
	key   string
	label string
}{
	{"entities", "entities"},
	{"relationships", "relationships"},
	{"actors", "actors"},
	{"useCases", "use cases"},
	{"interactions", "interactions"},
	{"stateMachines", "state machines"},
	{"components", "components"},
	{"deploymentNodes", "deployment nodes"},
	{"activities", "activities"},
}

func renderView(summary application.ModelSummary, opts RenderOptions, s styles) string {
	name := strings.TrimSpace(summary.Model.System.Name)
	if name == "" {
		name = "Unnamed system"
	}

	lines := []string{
		s.title.Render(name),
		s.header.Render(fmt.Sprintf("session: %s", summary.Session)),
	}
	if description := strings.TrimSpace(summary.Model.System.Description); description != "" {
		lines = append(lines, s.detail.Render(description))
	}

	lines = append(lines,
		s.section.Render(renderCounts(summary.Counts, s)),
		s.section.Render(renderViews(summary, s)),
		s.section.Render(renderIssues(summary, opts, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCounts(counts map[string]int, s styles) string {
	largest := 0
	for _, count := range counts {
		largest = max(largest, count)
	}

	width := 0
	for _, entry := range collectionOrder {
		width = max(width, len(entry.label))
	}

	parts := []string{s.title.Render("Elements")}
	for _, entry := range collectionOrder {
		count := counts[entry.key]
		label := s.countKey.Render(fmt.Sprintf("%-*s", width, entry.label))
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			label,
			" ",
			renderBar(count, largest, barWidth, s),
			" ",
			s.countValue.Render(fmt.Sprintf("%d", count)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderViews(summary application.ModelSummary, s styles) string {
	title := s.title.Render("Views")
	if len(summary.AvailableViews) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.empty.Render("No views registered."))
	}

	names := make([]string, 0, len(summary.AvailableViews))
	for _, view := range summary.AvailableViews {
		names = append(names, s.view.Render(string(view)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(names, ", "))
}

func renderIssues(summary application.ModelSummary, opts RenderOptions, s styles) string {
	issues := summary.ReferenceIssues
	if len(issues) == 0 {
		return s.empty.Render("All references resolve.")
	}

	parts := []string{s.warning.Render(fmt.Sprintf("Unresolved references: %d", len(issues)))}
	shown := issues
	if opts.MaxIssues > 0 && len(shown) > opts.MaxIssues {
		shown = shown[:opts.MaxIssues]
	}
	for _, issue := range shown {
		parts = append(parts, s.detail.Render("- "+issue.String()))
	}
	if hidden := len(issues) - len(shown); hidden > 0 {
		parts = append(parts, s.empty.Render(fmt.Sprintf("... and %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderBar(count, largest, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if largest > 0 {
		filled = int(math.Round(float64(width) * float64(count) / float64(largest)))
	}
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
