package memory

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports/mocks"
)

func steppingClock(t *testing.T, start time.Time) (*mocks.MockClock, *time.Time) {
	t.Helper()

	now := start
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return now }).Maybe()
	return clock, &now
}

func shopModel() domain.SystemModel {
	return domain.SystemModel{
		System: domain.SystemInfo{Name: "Shop", Metadata: map[string]any{"version": 2, "ratio": 0.5}},
		Entities: []domain.Entity{
			{ID: "user", Name: "User", Kind: domain.EntityKindClass, Attributes: []domain.Attribute{
				{Name: "age", Type: "int", Default: 0},
				{Name: "active", Type: "bool", Default: false},
			}},
			{ID: "order", Name: "Order", Kind: domain.EntityKindClass},
		},
		Relationships: []domain.Relationship{
			{ID: "r1", Kind: domain.RelationshipAssociation, Source: "user", Target: "order"},
		},
	}
}

func TestStoreModelRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", shopModel()))

	got, found, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, shopModel(), got)

	exists, err := store.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, found, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreGetReturnsIsolatedCopies(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()
	model := shopModel()
	require.NoError(t, store.Save(ctx, "s1", model))

	model.Entities[0].Name = "Changed after save"
	got, _, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "User", got.Entities[0].Name)

	got.Entities[1].Name = "Changed after get"
	again, _, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Order", again.Entities[1].Name)
}

func TestStoreModelExpiresAndMutationsResetTTL(t *testing.T) {
	t.Parallel()

	clock, now := steppingClock(t, time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC))
	store := NewStore(WithClock(clock), WithModelTTL(time.Hour))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", shopModel()))

	*now = now.Add(50 * time.Minute)
	applied, err := store.Update(ctx, "s1", domain.ModelPatch{}.SetSystem(domain.SystemInfo{Name: "Renamed"}))
	require.NoError(t, err)
	require.True(t, applied)

	*now = now.Add(50 * time.Minute)
	got, found, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Renamed", got.System.Name)

	*now = now.Add(10 * time.Minute)
	exists, err := store.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreUpdateOnlyTouchesPatchedFields(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "s1", shopModel()))

	actors := []domain.Actor{{ID: "buyer", Name: "Buyer", Kind: domain.ActorKindHuman}}
	applied, err := store.Update(ctx, "s1", domain.ModelPatch{}.SetActors(actors))
	require.NoError(t, err)
	require.True(t, applied)

	got, _, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, actors, got.Actors)
	assert.Equal(t, shopModel().Entities, got.Entities)
	assert.Equal(t, shopModel().Relationships, got.Relationships)
}

func TestStoreUpdateWithoutModelReportsNotApplied(t *testing.T) {
	t.Parallel()

	applied, err := NewStore().Update(context.Background(), "missing", domain.ModelPatch{}.SetActors(nil))
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestStoreHistoryAppendListClear(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	store := NewStore()
	ctx := context.Background()

	request := domain.NewRequestEntry("a shop", []domain.ViewID{domain.ViewClass}, at)
	response := domain.NewResponseEntry(domain.DiagramView{View: domain.ViewClass, Markup: "@startuml\n@enduml"}, domain.TokenUsage{TotalTokens: 9}, at)

	require.NoError(t, store.Append(ctx, "s1", request))
	require.NoError(t, store.Append(ctx, "s1", response))

	entries, err := store.List(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryEntry{request, response}, entries)

	require.NoError(t, store.Clear(ctx, "s1"))
	entries, err = store.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreHistoryExpires(t *testing.T) {
	t.Parallel()

	clock, now := steppingClock(t, time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC))
	store := NewStore(WithClock(clock))
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", domain.NewRequestEntry("a shop", nil, *now)))

	*now = now.Add(time.Hour)
	entries, err := store.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreConcurrentUpdatesKeepEveryField(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "s1", shopModel()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "s1", domain.ModelPatch{}.SetSystem(domain.SystemInfo{Name: "v" + strconv.Itoa(i)}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, found, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, shopModel().Entities, got.Entities)
	assert.Contains(t, got.System.Name, "v")
}

func TestStoreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore()
	require.ErrorIs(t, store.Save(ctx, "s1", shopModel()), context.Canceled)
	_, _, err := store.Get(ctx, "s1")
	require.ErrorIs(t, err, context.Canceled)
}
