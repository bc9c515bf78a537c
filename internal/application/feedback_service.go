package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

// FeedbackService pairs a judgment on a rendered diagram with the request
// that produced it and stores the pair as a training record.
type FeedbackService struct {
	history ports.HistoryStore
	repo    ports.FeedbackRepository
	clock   ports.Clock
	newID   func() domain.FeedbackID
}

func NewFeedbackService(history ports.HistoryStore, repo ports.FeedbackRepository, clock ports.Clock) *FeedbackService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &FeedbackService{
		history: history,
		repo:    repo,
		clock:   clock,
		newID: func() domain.FeedbackID {
			return domain.FeedbackID(uuid.NewString())
		},
	}
}

func (s *FeedbackService) Submit(ctx context.Context, cmd SubmitFeedbackCommand) (domain.Feedback, error) {
	judgment, err := domain.ParseJudgment(string(cmd.Judgment))
	if err != nil {
		return domain.Feedback{}, err
	}

	history, err := s.history.List(ctx, cmd.Session)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("list history: %w", err)
	}

	requests, responses := domain.SplitHistory(history)
	if cmd.DiagramIndex < 0 || cmd.DiagramIndex >= len(responses) || len(requests) == 0 {
		return domain.Feedback{}, fmt.Errorf("%w: index %d in session %q", domain.ErrDiagramNotFound, cmd.DiagramIndex, cmd.Session)
	}

	response := responses[cmd.DiagramIndex]
	request := requests[min(cmd.DiagramIndex, len(requests)-1)]

	feedback := domain.Feedback{
		ID:           s.newID(),
		SessionID:    cmd.Session,
		Timestamp:    response.Timestamp,
		StoredAt:     s.clock.Now(),
		DiagramIndex: cmd.DiagramIndex,
		Prompt:       request.Prompt,
		View:         response.View,
		Markup:       response.Markup,
		ArtifactPath: response.ArtifactPath,
		Judgment:     judgment,
		Reward:       judgment.Reward(),
		Comment:      cmd.Comment,
		IsEdit:       request.IsEdit(),
		Conversation: append([]domain.HistoryEntry(nil), history[:min(cmd.DiagramIndex*2, len(history))]...),
	}
	if feedback.IsEdit && cmd.DiagramIndex > 0 {
		feedback.PreviousMarkup = responses[cmd.DiagramIndex-1].Markup
	}

	if err := s.repo.Save(ctx, feedback); err != nil {
		return domain.Feedback{}, fmt.Errorf("save feedback: %w", err)
	}

	return feedback, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return entries, nil
}

func (s *FeedbackService) Get(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error) {
	feedback, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("get feedback by id: %w", err)
	}
	return feedback, nil
}

// Export writes every stored record to w and returns how many were written.
// YAML output keeps the JSON field names.
func (s *FeedbackService) Export(ctx context.Context, w io.Writer, format ExportFormat) (int, error) {
	if !format.Valid() {
		return 0, fmt.Errorf("unsupported export format %q", format)
	}

	entries, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if entries == nil {
		entries = []domain.Feedback{}
	}

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode feedback: %w", err)
	}

	if format == ExportFormatJSON {
		if _, err := w.Write(append(payload, '\n')); err != nil {
			return 0, fmt.Errorf("write feedback export: %w", err)
		}
		return len(entries), nil
	}

	var generic []any
	if err := json.Unmarshal(payload, &generic); err != nil {
		return 0, fmt.Errorf("decode feedback: %w", err)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(generic); err != nil {
		return 0, fmt.Errorf("write feedback export: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("write feedback export: %w", err)
	}

	return len(entries), nil
}
