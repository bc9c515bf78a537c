package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutUsesNamespacedPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		namespace: DefaultNamespace,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", "umlgen/generation/api_key"}, args)
			assert.Equal(t, "top-secret\n", input)
			return "", "", nil
		},
	}

	require.NoError(t, store.Put(context.Background(), "generation/api_key", "top-secret"))
	assert.True(t, called)
}

func TestStoreGetReturnsFirstLineOnly(t *testing.T) {
	t.Parallel()

	store := &Store{
		namespace: "team",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "team/generation/api_key"}, args)
			assert.Empty(t, input)
			return "top-secret\r\nurl: https://api.together.xyz\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "generation/api_key")
	require.NoError(t, err)
	assert.Equal(t, "top-secret", value)
}

func TestStoreDeleteUsesPassRemove(t *testing.T) {
	t.Parallel()

	store := &Store{
		namespace: DefaultNamespace,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "umlgen/generation/api_key"}, args)
			return "", "", nil
		},
	}

	require.NoError(t, store.Delete(context.Background(), "generation/api_key"))
}

func TestStoreGetMissingEntryReturnsSecretNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		namespace: DefaultNamespace,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: umlgen/generation/api_key is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "generation/api_key")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		namespace: DefaultNamespace,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), "generation/api_key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "umlgen/generation/api_key")
	assert.ErrorContains(t, err, "decryption failed")
}

func TestNewStoreDefaultsNamespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultNamespace, NewStore(" ").namespace)
}
