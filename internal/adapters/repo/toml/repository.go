package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	feedbackPathKey    = "feedback.path"
	feedbackFileMode   = 0o600
	feedbackDirMode    = 0o700
	feedbackConfigDir  = ".umlgen"
	feedbackConfigFile = "feedback.toml"
	tempFilePattern    = ".feedback-*.toml.tmp"
)

// Repository keeps feedback records in a single TOML file. Records never
// expire.
type Repository struct {
	feedbackPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.FeedbackRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	feedbackPath := cfg.GetString(feedbackPathKey)
	if feedbackPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		feedbackPath = filepath.Join(homeDir, feedbackConfigDir, feedbackConfigFile)
	}

	feedbackPath, err := normalizeFeedbackPath(feedbackPath)
	if err != nil {
		return nil, err
	}

	return &Repository{feedbackPath: feedbackPath, mu: lockForPath(feedbackPath)}, nil
}

func (r *Repository) Path() string {
	return r.feedbackPath
}

func (r *Repository) Save(ctx context.Context, feedback domain.Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if feedback.ID == "" {
		return errors.New("feedback id is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(feedback)
	updated := false
	for i := range file.Feedback {
		if file.Feedback[i].ID == encoded.ID {
			file.Feedback[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Feedback = append(file.Feedback, encoded)
		file.Index = append([]string{encoded.ID}, file.Index...)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feedback{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Feedback{}, err
	}

	for _, entry := range file.Feedback {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Feedback{}, fmt.Errorf("%w: %s", domain.ErrFeedbackNotFound, id)
}

// List returns records newest first. Records missing from the index, as in
// hand-edited files, follow in file order.
func (r *Repository) List(ctx context.Context) ([]domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]feedbackSchema, len(file.Feedback))
	for _, entry := range file.Feedback {
		byID[entry.ID] = entry
	}

	entries := make([]domain.Feedback, 0, len(file.Feedback))
	listed := make(map[string]bool, len(file.Index))
	for _, id := range file.Index {
		entry, ok := byID[id]
		if !ok || listed[id] {
			continue
		}
		listed[id] = true
		entries = append(entries, fromSchema(entry))
	}
	for _, entry := range file.Feedback {
		if !listed[entry.ID] {
			entries = append(entries, fromSchema(entry))
		}
	}

	return entries, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.feedbackPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read feedback file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode feedback file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeFeedbackPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve feedback path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.feedbackPath), feedbackDirMode); err != nil {
		return fmt.Errorf("create feedback directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode feedback file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.feedbackPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp feedback file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp feedback file: %w", err)
	}

	if err := tempFile.Chmod(feedbackFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp feedback file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp feedback file: %w", err)
	}

	if err := os.Rename(tempName, r.feedbackPath); err != nil {
		return fmt.Errorf("replace feedback file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.feedbackPath, feedbackFileMode); err != nil {
		return fmt.Errorf("chmod feedback file: %w", err)
	}

	return nil
}

func toSchema(feedback domain.Feedback) feedbackSchema {
	conversation := make([]historySchema, 0, len(feedback.Conversation))
	for _, entry := range feedback.Conversation {
		conversation = append(conversation, toHistorySchema(entry))
	}

	return feedbackSchema{
		ID:             string(feedback.ID),
		SessionID:      string(feedback.SessionID),
		Timestamp:      formatTime(feedback.Timestamp),
		StoredAt:       formatTime(feedback.StoredAt),
		DiagramIndex:   feedback.DiagramIndex,
		Prompt:         feedback.Prompt,
		View:           string(feedback.View),
		Markup:         feedback.Markup,
		ArtifactPath:   feedback.ArtifactPath,
		Judgment:       string(feedback.Judgment),
		Reward:         feedback.Reward,
		Comment:        feedback.Comment,
		IsEdit:         feedback.IsEdit,
		PreviousMarkup: feedback.PreviousMarkup,
		Conversation:   conversation,
	}
}

func fromSchema(entry feedbackSchema) domain.Feedback {
	var conversation []domain.HistoryEntry
	for _, item := range entry.Conversation {
		conversation = append(conversation, fromHistorySchema(item))
	}

	return domain.Feedback{
		ID:             domain.FeedbackID(entry.ID),
		SessionID:      domain.SessionID(entry.SessionID),
		Timestamp:      parseTime(entry.Timestamp),
		StoredAt:       parseTime(entry.StoredAt),
		DiagramIndex:   entry.DiagramIndex,
		Prompt:         entry.Prompt,
		View:           domain.ViewID(entry.View),
		Markup:         entry.Markup,
		ArtifactPath:   entry.ArtifactPath,
		Judgment:       domain.Judgment(entry.Judgment),
		Reward:         entry.Reward,
		Comment:        entry.Comment,
		IsEdit:         entry.IsEdit,
		PreviousMarkup: entry.PreviousMarkup,
		Conversation:   conversation,
	}
}

func toHistorySchema(entry domain.HistoryEntry) historySchema {
	var views []string
	for _, view := range entry.Views {
		views = append(views, string(view))
	}

	return historySchema{
		Type:         string(entry.Kind),
		Timestamp:    formatTime(entry.Timestamp),
		Prompt:       entry.Prompt,
		Views:        views,
		View:         string(entry.View),
		Markup:       entry.Markup,
		ArtifactPath: entry.ArtifactPath,
		Usage: usageSchema{
			PromptTokens:     entry.Usage.PromptTokens,
			CompletionTokens: entry.Usage.CompletionTokens,
			TotalTokens:      entry.Usage.TotalTokens,
		},
	}
}

func fromHistorySchema(entry historySchema) domain.HistoryEntry {
	var views []domain.ViewID
	for _, view := range entry.Views {
		views = append(views, domain.ViewID(view))
	}

	return domain.HistoryEntry{
		Kind:         domain.HistoryEntryKind(entry.Type),
		Timestamp:    parseTime(entry.Timestamp),
		Prompt:       entry.Prompt,
		Views:        views,
		View:         domain.ViewID(entry.View),
		Markup:       entry.Markup,
		ArtifactPath: entry.ArtifactPath,
		Usage: domain.TokenUsage{
			PromptTokens:     entry.Usage.PromptTokens,
			CompletionTokens: entry.Usage.CompletionTokens,
			TotalTokens:      entry.Usage.TotalTokens,
		},
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
