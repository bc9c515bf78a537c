package application

import (
	"context"
	"fmt"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

// HistoryService records the conversation of a session as alternating request
// and response entries.
type HistoryService struct {
	store ports.HistoryStore
	clock ports.Clock
}

func NewHistoryService(store ports.HistoryStore, clock ports.Clock) *HistoryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &HistoryService{store: store, clock: clock}
}

// RecordRequest appends a request. A request without views is an edit of
// the previous diagram.
func (s *HistoryService) RecordRequest(ctx context.Context, session domain.SessionID, prompt string, views []domain.ViewID) error {
	entry := domain.NewRequestEntry(prompt, views, s.clock.Now())
	if err := s.store.Append(ctx, session, entry); err != nil {
		return fmt.Errorf("append history request: %w", err)
	}
	return nil
}

// RecordResponses appends one response per diagram, in the given order.
func (s *HistoryService) RecordResponses(ctx context.Context, session domain.SessionID, diagrams ...domain.DiagramView) error {
	if len(diagrams) == 0 {
		return nil
	}

	now := s.clock.Now()
	entries := make([]domain.HistoryEntry, 0, len(diagrams))
	for _, diagram := range diagrams {
		entries = append(entries, domain.NewResponseEntry(diagram, diagram.GenerationCost, now))
	}

	if err := s.store.Append(ctx, session, entries...); err != nil {
		return fmt.Errorf("append history responses: %w", err)
	}
	return nil
}

func (s *HistoryService) History(ctx context.Context, session domain.SessionID) ([]domain.HistoryEntry, error) {
	entries, err := s.store.List(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

func (s *HistoryService) Clear(ctx context.Context, session domain.SessionID) error {
	if err := s.store.Clear(ctx, session); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
