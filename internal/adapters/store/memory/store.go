// Package memory keeps session models and histories in process memory. It
// honors the same expiry rules as the durable store and is used for tests and
// one-shot runs.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/umlgen/internal/adapters/store/codec"
	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// Store implements ports.ModelStore and ports.HistoryStore. Values are held
// encoded so callers never share slices with the store.
type Store struct {
	mu         sync.Mutex
	models     map[domain.SessionID]entry
	histories  map[domain.SessionID]entry
	modelTTL   time.Duration
	historyTTL time.Duration
	clock      ports.Clock
}

var (
	_ ports.ModelStore   = (*Store)(nil)
	_ ports.HistoryStore = (*Store)(nil)
)

type Option func(*Store)

func WithModelTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.modelTTL = ttl
		}
	}
}

func WithHistoryTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.historyTTL = ttl
		}
	}
}

func WithClock(clock ports.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		models:     map[domain.SessionID]entry{},
		histories:  map[domain.SessionID]entry{},
		modelTTL:   ports.DefaultModelTTL,
		historyTTL: ports.DefaultHistoryTTL,
		clock:      ports.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Save(ctx context.Context, session domain.SessionID, model domain.SystemModel) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := codec.EncodeModel(model)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.models[session] = entry{payload: payload, expiresAt: s.clock.Now().Add(s.modelTTL)}
	return nil
}

func (s *Store) Get(ctx context.Context, session domain.SessionID) (domain.SystemModel, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.SystemModel{}, false, err
	}

	s.mu.Lock()
	current, ok := s.live(s.models, session)
	s.mu.Unlock()
	if !ok {
		return domain.SystemModel{}, false, nil
	}

	model, err := codec.DecodeModel(current.payload)
	if err != nil {
		return domain.SystemModel{}, false, err
	}
	return model, true, nil
}

func (s *Store) Exists(ctx context.Context, session domain.SessionID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.live(s.models, session)
	return ok, nil
}

func (s *Store) Delete(ctx context.Context, session domain.SessionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.models, session)
	return nil
}

// Update holds the lock across read, patch and write so concurrent updates to
// one session never lose fields.
func (s *Store) Update(ctx context.Context, session domain.SessionID, patch domain.ModelPatch) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.live(s.models, session)
	if !ok {
		return false, nil
	}

	model, err := codec.DecodeModel(current.payload)
	if err != nil {
		return false, err
	}
	payload, err := codec.EncodeModel(patch.Apply(model))
	if err != nil {
		return false, err
	}

	s.models[session] = entry{payload: payload, expiresAt: s.clock.Now().Add(s.modelTTL)}
	return true, nil
}

func (s *Store) Append(ctx context.Context, session domain.SessionID, entries ...domain.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var history []domain.HistoryEntry
	if current, ok := s.live(s.histories, session); ok {
		decoded, err := codec.DecodeHistory(current.payload)
		if err != nil {
			return err
		}
		history = decoded
	}

	payload, err := codec.EncodeHistory(append(history, entries...))
	if err != nil {
		return err
	}

	s.histories[session] = entry{payload: payload, expiresAt: s.clock.Now().Add(s.historyTTL)}
	return nil
}

func (s *Store) List(ctx context.Context, session domain.SessionID) ([]domain.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	current, ok := s.live(s.histories, session)
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	return codec.DecodeHistory(current.payload)
}

func (s *Store) Clear(ctx context.Context, session domain.SessionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.histories, session)
	return nil
}

// live returns the unexpired entry for session and drops an expired one.
// Callers hold s.mu.
func (s *Store) live(entries map[domain.SessionID]entry, session domain.SessionID) (entry, bool) {
	current, ok := entries[session]
	if !ok {
		return entry{}, false
	}
	if !s.clock.Now().Before(current.expiresAt) {
		delete(entries, session)
		return entry{}, false
	}
	return current, true
}
