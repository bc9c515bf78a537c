package domain

import (
	"fmt"
	"strings"
	"time"
)

type Judgment string

const (
	JudgmentThumbsUp   Judgment = "thumbs_up"
	JudgmentThumbsDown Judgment = "thumbs_down"
)

func ParseJudgment(raw string) (Judgment, error) {
	switch j := Judgment(strings.ToLower(strings.TrimSpace(raw))); j {
	case JudgmentThumbsUp, JudgmentThumbsDown:
		return j, nil
	case "up", "+1", "positive":
		return JudgmentThumbsUp, nil
	case "down", "-1", "negative":
		return JudgmentThumbsDown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidJudgment, raw)
	}
}

// Reward maps the binary judgment onto the training signal.
func (j Judgment) Reward() float64 {
	if j == JudgmentThumbsUp {
		return 1.0
	}
	return -1.0
}

type FeedbackID string

type Feedback struct {
	ID             FeedbackID     `json:"feedbackId"`
	SessionID      SessionID      `json:"sessionId"`
	Timestamp      time.Time      `json:"timestamp"`
	StoredAt       time.Time      `json:"storedAt"`
	DiagramIndex   int            `json:"diagramIndex"`
	Prompt         string         `json:"prompt"`
	View           ViewID         `json:"diagramType"`
	Markup         string         `json:"diagramCode"`
	ArtifactPath   string         `json:"imagePath,omitempty"`
	Judgment       Judgment       `json:"feedback"`
	Reward         float64        `json:"reward"`
	Comment        string         `json:"comments,omitempty"`
	IsEdit         bool           `json:"isEdit"`
	Conversation   []HistoryEntry `json:"conversationHistory,omitempty"`
	PreviousMarkup string         `json:"previousDiagramCode,omitempty"`
}
