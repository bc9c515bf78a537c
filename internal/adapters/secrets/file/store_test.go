package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiKeyRef = "generation/api_key"

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid secret key"},
		{name: "traversal", key: "../escape", wantErr: "invalid secret key"},
		{name: "deep traversal", key: "../../secret", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), apiKeyRef, "top-secret"))

	got, err := store.Get(context.Background(), apiKeyRef)
	require.NoError(t, err)
	assert.Equal(t, "top-secret", got)

	info, err := os.Stat(filepath.Join(root, apiKeyRef))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMod), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(root, "generation", ".secret-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "generation"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, apiKeyRef), []byte("edited-by-hand\n"), 0o600))

	got, err := NewStore(root).Get(context.Background(), apiKeyRef)
	require.NoError(t, err)
	assert.Equal(t, "edited-by-hand", got)
}

func TestStoreGetMissingReturnsSecretNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Get(context.Background(), apiKeyRef)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStorePutRejectsEmptyValue(t *testing.T) {
	t.Parallel()

	err := NewStore(t.TempDir()).Put(context.Background(), apiKeyRef, " ")
	require.Error(t, err)
	assert.ErrorContains(t, err, "value is empty")
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), apiKeyRef))
	require.NoError(t, store.Delete(context.Background(), apiKeyRef))
}
