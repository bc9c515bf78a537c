package views

import "strings"

// NormalizeBlankLines collapses every run of blank lines into its first line.
// Whitespace-only lines count as blank. Kept lines are left as they are.
func NormalizeBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if !prevBlank {
				out = append(out, line)
			}
			prevBlank = true
			continue
		}
		out = append(out, line)
		prevBlank = false
	}
	return strings.Join(out, "\n")
}
