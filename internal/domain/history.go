package domain

import "time"

type HistoryEntryKind string

const (
	HistoryRequest  HistoryEntryKind = "request"
	HistoryResponse HistoryEntryKind = "response"
)

// HistoryEntry is one tagged item of a session's conversation. Request fields
// are set for requests, response fields for responses.
type HistoryEntry struct {
	Kind      HistoryEntryKind `json:"type"`
	Timestamp time.Time        `json:"timestamp"`

	Prompt string   `json:"prompt,omitempty"`
	Views  []ViewID `json:"views,omitempty"`

	View         ViewID     `json:"view,omitempty"`
	Markup       string     `json:"markup,omitempty"`
	ArtifactPath string     `json:"artifactPath,omitempty"`
	Usage        TokenUsage `json:"usage"`
}

// IsEdit reports whether a request asked for no views, meaning it edits the
// previous diagram instead of asking for new ones.
func (e HistoryEntry) IsEdit() bool {
	return e.Kind == HistoryRequest && len(e.Views) == 0
}

func NewRequestEntry(prompt string, views []ViewID, at time.Time) HistoryEntry {
	return HistoryEntry{Kind: HistoryRequest, Timestamp: at, Prompt: prompt, Views: views}
}

func NewResponseEntry(view DiagramView, usage TokenUsage, at time.Time) HistoryEntry {
	return HistoryEntry{
		Kind:         HistoryResponse,
		Timestamp:    at,
		View:         view.View,
		Markup:       view.Markup,
		ArtifactPath: view.ArtifactPath,
		Usage:        usage,
	}
}

// SplitHistory separates requests and responses, each in original order.
func SplitHistory(entries []HistoryEntry) (requests, responses []HistoryEntry) {
	for _, entry := range entries {
		switch entry.Kind {
		case HistoryRequest:
			requests = append(requests, entry)
		case HistoryResponse:
			responses = append(responses, entry)
		}
	}
	return requests, responses
}
