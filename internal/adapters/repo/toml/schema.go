package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int              `toml:"version"`
	Index    []string         `toml:"index"` // feedback ids, newest first
	Feedback []feedbackSchema `toml:"feedback"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported feedback schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type feedbackSchema struct {
	ID             string          `toml:"id"`
	SessionID      string          `toml:"session_id"`
	Timestamp      string          `toml:"timestamp"`
	StoredAt       string          `toml:"stored_at"`
	DiagramIndex   int             `toml:"diagram_index"`
	Prompt         string          `toml:"prompt"`
	View           string          `toml:"diagram_type"`
	Markup         string          `toml:"diagram_code"`
	ArtifactPath   string          `toml:"image_path,omitempty"`
	Judgment       string          `toml:"feedback"`
	Reward         float64         `toml:"reward"`
	Comment        string          `toml:"comments,omitempty"`
	IsEdit         bool            `toml:"is_edit"`
	PreviousMarkup string          `toml:"previous_diagram_code,omitempty"`
	Conversation   []historySchema `toml:"conversation,omitempty"`
}

type historySchema struct {
	Type         string      `toml:"type"`
	Timestamp    string      `toml:"timestamp"`
	Prompt       string      `toml:"prompt,omitempty"`
	Views        []string    `toml:"views,omitempty"`
	View         string      `toml:"view,omitempty"`
	Markup       string      `toml:"markup,omitempty"`
	ArtifactPath string      `toml:"artifact_path,omitempty"`
	Usage        usageSchema `toml:"usage"`
}

type usageSchema struct {
	PromptTokens     int64 `toml:"prompt_tokens"`
	CompletionTokens int64 `toml:"completion_tokens"`
	TotalTokens      int64 `toml:"total_tokens"`
}
