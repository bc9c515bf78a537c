// Package sqlstore persists session models and histories in a SQL database.
// Each row holds a msgpack payload and an expiry in unix nanoseconds; expired
// rows read as absent and are purged on the next write.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/bnema/umlgen/internal/adapters/store/codec"
	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

const (
	modelsTable    = "umlgen_models"
	historiesTable = "umlgen_histories"
)

type Store struct {
	db         *sql.DB
	dialect    Dialect
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

// New wraps an open database. The schema is not touched; call Migrate.
func New(db *sql.DB, dialect Dialect, opts ...Option) *Store {
	s := &Store{
		db:         db,
		dialect:    dialect,
		modelTTL:   ports.DefaultModelTTL,
		historyTTL: ports.DefaultHistoryTTL,
		clock:      ports.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open connects to dsn and creates the tables when missing. A plain sqlite
// path gets its parent directory created first.
func Open(ctx context.Context, dialect Dialect, dsn string, opts ...Option) (*Store, error) {
	if dialect == DialectSQLite {
		if err := ensureSQLiteDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrStoreUnavailable, dialect, err)
	}
	if dialect == DialectSQLite {
		// sqlite allows one writer; a single connection also keeps :memory: alive.
		db.SetMaxOpenConns(1)
	}

	s := New(db, dialect, opts...)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range s.dialect.schema() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return unavailable("migrate", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, session domain.SessionID, model domain.SystemModel) error {
	payload, err := codec.EncodeModel(model)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	if err := s.purge(ctx, modelsTable, now); err != nil {
		return err
	}
	if err := s.upsert(ctx, s.db, modelsTable, session, payload, now.Add(s.modelTTL)); err != nil {
		return unavailable("save model", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, session domain.SessionID) (domain.SystemModel, bool, error) {
	payload, found, err := s.load(ctx, s.db, modelsTable, session, false)
	if err != nil {
		return domain.SystemModel{}, false, unavailable("get model", err)
	}
	if !found {
		return domain.SystemModel{}, false, nil
	}

	model, err := codec.DecodeModel(payload)
	if err != nil {
		return domain.SystemModel{}, false, err
	}
	return model, true, nil
}

func (s *Store) Exists(ctx context.Context, session domain.SessionID) (bool, error) {
	var count int
	query := s.dialect.rebind("SELECT COUNT(*) FROM " + modelsTable + " WHERE session_id = ? AND expires_at > ?")
	if err := s.db.QueryRowContext(ctx, query, string(session), s.clock.Now().UnixNano()).Scan(&count); err != nil {
		return false, unavailable("check model", err)
	}
	return count > 0, nil
}

func (s *Store) Delete(ctx context.Context, session domain.SessionID) error {
	query := s.dialect.rebind("DELETE FROM " + modelsTable + " WHERE session_id = ?")
	if _, err := s.db.ExecContext(ctx, query, string(session)); err != nil {
		return unavailable("delete model", err)
	}
	return nil
}

// Update reads, patches and writes the model inside one transaction.
func (s *Store) Update(ctx context.Context, session domain.SessionID, patch domain.ModelPatch) (bool, error) {
	applied := false
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		payload, found, err := s.load(ctx, tx, modelsTable, session, true)
		if err != nil || !found {
			return err
		}

		model, err := codec.DecodeModel(payload)
		if err != nil {
			return err
		}
		updated, err := codec.EncodeModel(patch.Apply(model))
		if err != nil {
			return err
		}

		if err := s.upsert(ctx, tx, modelsTable, session, updated, s.clock.Now().Add(s.modelTTL)); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, unavailable("update model", err)
	}
	return applied, nil
}

func (s *Store) Append(ctx context.Context, session domain.SessionID, entries ...domain.HistoryEntry) error {
	now := s.clock.Now()
	if err := s.purge(ctx, historiesTable, now); err != nil {
		return err
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		payload, found, err := s.load(ctx, tx, historiesTable, session, true)
		if err != nil {
			return err
		}

		var history []domain.HistoryEntry
		if found {
			if history, err = codec.DecodeHistory(payload); err != nil {
				return err
			}
		}

		updated, err := codec.EncodeHistory(append(history, entries...))
		if err != nil {
			return err
		}
		return s.upsert(ctx, tx, historiesTable, session, updated, now.Add(s.historyTTL))
	})
	if err != nil {
		return unavailable("append history", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, session domain.SessionID) ([]domain.HistoryEntry, error) {
	payload, found, err := s.load(ctx, s.db, historiesTable, session, false)
	if err != nil {
		return nil, unavailable("list history", err)
	}
	if !found {
		return nil, nil
	}
	return codec.DecodeHistory(payload)
}

func (s *Store) Clear(ctx context.Context, session domain.SessionID) error {
	query := s.dialect.rebind("DELETE FROM " + historiesTable + " WHERE session_id = ?")
	if _, err := s.db.ExecContext(ctx, query, string(session)); err != nil {
		return unavailable("clear history", err)
	}
	return nil
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) load(ctx context.Context, q querier, table string, session domain.SessionID, forUpdate bool) ([]byte, bool, error) {
	query := "SELECT payload FROM " + table + " WHERE session_id = ? AND expires_at > ?"
	if forUpdate {
		query += s.dialect.lockClause()
	}

	var payload []byte
	err := q.QueryRowContext(ctx, s.dialect.rebind(query), string(session), s.clock.Now().UnixNano()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (s *Store) upsert(ctx context.Context, q querier, table string, session domain.SessionID, payload []byte, expiresAt time.Time) error {
	query := s.dialect.rebind("INSERT INTO " + table + " (session_id, payload, expires_at) VALUES (?, ?, ?) " +
		"ON CONFLICT (session_id) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at")
	_, err := q.ExecContext(ctx, query, string(session), payload, expiresAt.UnixNano())
	return err
}

func (s *Store) purge(ctx context.Context, table string, now time.Time) error {
	query := s.dialect.rebind("DELETE FROM " + table + " WHERE expires_at <= ?")
	if _, err := s.db.ExecContext(ctx, query, now.UnixNano()); err != nil {
		return unavailable("purge expired", err)
	}
	return nil
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rerr))
		}
		return err
	}
	return tx.Commit()
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}

func ensureSQLiteDir(dsn string) error {
	if dsn == "" || strings.HasPrefix(dsn, "file:") || strings.Contains(dsn, ":memory:") {
		return nil
	}

	path, _, _ := strings.Cut(dsn, "?")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	return nil
}
