package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	envstore "github.com/bnema/umlgen/internal/adapters/secrets/env"
	filestore "github.com/bnema/umlgen/internal/adapters/secrets/file"
	passstore "github.com/bnema/umlgen/internal/adapters/secrets/pass"
	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

// Backend is one named link of the chain. The name only appears in errors.
type Backend struct {
	Name  string
	Store ports.SecretStore
}

// Store tries its backends in order. Reads and writes stop at the first
// backend that succeeds; deletes reach every backend so no stale copy is left.
type Store struct {
	backends []Backend
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret chain has no backends")

func NewStore(backends ...Backend) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend.Store == nil {
			return nil, fmt.Errorf("secret backend %d (%s) is nil", i, backend.Name)
		}
	}

	return &Store{backends: append([]Backend(nil), backends...)}, nil
}

// NewDefault reads UMLGEN_* variables first, then pass, then files under
// fileRoot. Writes land in pass when it is installed and in files otherwise.
func NewDefault(fileRoot string, envOpts ...envstore.Option) (*Store, error) {
	return NewStore(
		Backend{Name: "env", Store: envstore.NewStore(envstore.DefaultPrefix, envOpts...)},
		Backend{Name: "pass", Store: passstore.NewStore(passstore.DefaultNamespace)},
		Backend{Name: "file", Store: filestore.NewStore(fileRoot)},
	)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	failures := make([]failure, 0, len(s.backends))
	for _, backend := range s.backends {
		value, err := backend.Store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if shouldSkipFallback(err) {
			return "", err
		}
		failures = append(failures, failure{backend: backend.Name, err: err})
	}

	return "", combine("get", key, failures)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	failures := make([]failure, 0, len(s.backends))
	for _, backend := range s.backends {
		err := backend.Store.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if shouldSkipFallback(err) {
			return err
		}
		failures = append(failures, failure{backend: backend.Name, err: err})
	}

	return combine("put", key, failures)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	failures := make([]failure, 0, len(s.backends))
	deleted := false
	for _, backend := range s.backends {
		err := backend.Store.Delete(ctx, key)
		if err == nil {
			deleted = true
			continue
		}
		if shouldSkipFallback(err) {
			return err
		}
		failures = append(failures, failure{backend: backend.Name, err: err})
	}
	if deleted {
		return nil
	}

	return combine("delete", key, failures)
}

type failure struct {
	backend string
	err     error
}

// combine reports ErrSecretNotFound only when every backend agreed the key is
// absent. Otherwise the real backend failures are returned.
func combine(op string, key string, failures []failure) error {
	var (
		messages []string
		causes   []error
	)
	for _, f := range failures {
		messages = append(messages, fmt.Sprintf("%s backend %s failed: %v", f.backend, op, f.err))
		if !errors.Is(f.err, domain.ErrSecretNotFound) {
			causes = append(causes, fmt.Errorf("%s backend: %w", f.backend, f.err))
		}
	}

	if len(causes) == 0 {
		return fmt.Errorf("secret %q: %w (%s)", key, domain.ErrSecretNotFound, strings.Join(messages, "; "))
	}

	return fmt.Errorf("secret %s %q: %w", op, key, errors.Join(causes...))
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
