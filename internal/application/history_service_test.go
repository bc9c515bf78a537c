package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports/mocks"
)

func TestHistoryServiceRecordRequest(t *testing.T) {
	store := mocks.NewMockHistoryStore(t)
	service := NewHistoryService(store, fixedClock(t))

	store.EXPECT().Append(mockAnyContext(), domain.SessionID("s1"), domain.HistoryEntry{
		Kind:      domain.HistoryRequest,
		Timestamp: fixedNow,
		Prompt:    "an online shop",
		Views:     []domain.ViewID{domain.ViewClass},
	}).Return(nil).Once()

	require.NoError(t, service.RecordRequest(context.Background(), "s1", "an online shop", []domain.ViewID{domain.ViewClass}))
}

func TestHistoryServiceRecordResponsesKeepsOrderAndCost(t *testing.T) {
	store := mocks.NewMockHistoryStore(t)
	service := NewHistoryService(store, fixedClock(t))

	class := domain.DiagramView{View: domain.ViewClass, Markup: "@startuml\n@enduml", GenerationCost: shopUsage}
	sequence := domain.DiagramView{View: domain.ViewSequence, Markup: "@startuml\n@enduml", ArtifactPath: "out/s1.png"}

	store.EXPECT().Append(mockAnyContext(), domain.SessionID("s1"),
		domain.HistoryEntry{Kind: domain.HistoryResponse, Timestamp: fixedNow, View: domain.ViewClass, Markup: class.Markup, Usage: shopUsage},
		domain.HistoryEntry{Kind: domain.HistoryResponse, Timestamp: fixedNow, View: domain.ViewSequence, Markup: sequence.Markup, ArtifactPath: "out/s1.png"},
	).Return(nil).Once()

	require.NoError(t, service.RecordResponses(context.Background(), "s1", class, sequence))
}

func TestHistoryServiceRecordResponsesWithoutDiagramsIsNoop(t *testing.T) {
	service := NewHistoryService(mocks.NewMockHistoryStore(t), fixedClock(t))

	require.NoError(t, service.RecordResponses(context.Background(), "s1"))
}

func TestHistoryServiceWrapsStoreErrors(t *testing.T) {
	store := mocks.NewMockHistoryStore(t)
	service := NewHistoryService(store, fixedClock(t))
	down := errors.New("store down")

	store.EXPECT().List(mockAnyContext(), domain.SessionID("s1")).Return(nil, down).Once()
	store.EXPECT().Clear(mockAnyContext(), domain.SessionID("s1")).Return(down).Once()

	_, err := service.History(context.Background(), "s1")
	require.ErrorIs(t, err, down)
	assert.ErrorContains(t, err, "list history")

	err = service.Clear(context.Background(), "s1")
	require.ErrorIs(t, err, down)
	assert.ErrorContains(t, err, "clear history")
}
