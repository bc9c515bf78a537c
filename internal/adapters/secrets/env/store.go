package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

// ErrReadOnly is returned by Put and Delete. The environment belongs to the
// caller's shell.
var ErrReadOnly = errors.New("environment secret store is read-only")

// DefaultPrefix matches the configuration environment prefix.
const DefaultPrefix = "UMLGEN"

// Store resolves secret keys to environment variables: "generation/api_key"
// becomes UMLGEN_GENERATION_API_KEY. Aliases map a key to extra variable names
// tried after the prefixed one.
type Store struct {
	prefix  string
	aliases map[string][]string
	lookup  func(string) (string, bool)
}

var _ ports.SecretStore = (*Store)(nil)

type Option func(*Store)

func WithAlias(key string, names ...string) Option {
	return func(s *Store) {
		s.aliases[key] = append(s.aliases[key], names...)
	}
}

func NewStore(prefix string, opts ...Option) *Store {
	s := &Store{
		prefix:  prefix,
		aliases: map[string][]string{},
		lookup:  os.LookupEnv,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	names := append([]string{s.VariableName(key)}, s.aliases[key]...)
	for _, name := range names {
		if value, ok := s.lookup(name); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), nil
		}
	}

	return "", fmt.Errorf("environment secret %q (%s): %w", key, strings.Join(names, ", "), domain.ErrSecretNotFound)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return fmt.Errorf("put %q: %w", key, ErrReadOnly)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return fmt.Errorf("delete %q: %w", key, ErrReadOnly)
}

// VariableName returns the prefixed variable a key maps to.
func (s *Store) VariableName(key string) string {
	name := strings.ToUpper(strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(strings.TrimSpace(key)))
	if s.prefix == "" {
		return name
	}
	return strings.ToUpper(s.prefix) + "_" + name
}
