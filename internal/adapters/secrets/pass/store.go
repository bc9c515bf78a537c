package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

// DefaultNamespace groups every umlgen entry under one pass folder.
const DefaultNamespace = "umlgen"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store reads and writes secrets through the pass(1) password manager.
type Store struct {
	namespace string
	run       runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(namespace string) *Store {
	if strings.TrimSpace(namespace) == "" {
		namespace = DefaultNamespace
	}
	return &Store{namespace: namespace, run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := s.entry(key)
	_, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", entry)
	if err != nil {
		return formatError("put", entry, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entry := s.entry(key)
	stdout, stderr, err := s.run(ctx, "", "show", entry)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return "", fmt.Errorf("pass get %q: %w", entry, domain.ErrSecretNotFound)
		}
		return "", formatError("get", entry, err, stderr)
	}

	// Only the first line holds the secret; pass entries may carry metadata below it.
	value, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSuffix(value, "\r"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := s.entry(key)
	_, stderr, err := s.run(ctx, "", "rm", "-f", entry)
	if err != nil {
		return formatError("delete", entry, err, stderr)
	}

	return nil
}

func (s *Store) entry(key string) string {
	return path.Join(s.namespace, strings.TrimSpace(key))
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
