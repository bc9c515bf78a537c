package domain

import "fmt"

// TokenUsage is what one generation call cost. Rendering a view from a stored
// model costs nothing and reports the zero value.
type TokenUsage struct {
	PromptTokens     int64 `json:"promptTokens"`
	CompletionTokens int64 `json:"completionTokens"`
	TotalTokens      int64 `json:"totalTokens"`
}

func (u TokenUsage) IsZero() bool {
	return u == TokenUsage{}
}

// Total prefers the provider-reported total and falls back to the sum.
func (u TokenUsage) Total() int64 {
	if u.TotalTokens > 0 {
		return u.TotalTokens
	}
	return u.PromptTokens + u.CompletionTokens
}

func (u TokenUsage) TotalCompact() string {
	return compactNumber(u.Total())
}

func compactNumber(v int64) string {
	if v < 1_000 {
		return fmt.Sprintf("%d", v)
	}

	if v < 1_000_000 {
		return fmt.Sprintf("%.1fk", float64(v)/1_000)
	}

	return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
}
