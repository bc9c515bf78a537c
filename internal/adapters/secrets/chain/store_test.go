package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/umlgen/internal/domain"
	portmocks "github.com/bnema/umlgen/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiKeyRef = "generation/api_key"

func newTestChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	env := portmocks.NewMockSecretStore(t)
	pass := portmocks.NewMockSecretStore(t)
	file := portmocks.NewMockSecretStore(t)

	store, err := NewStore(
		Backend{Name: "env", Store: env},
		Backend{Name: "pass", Store: pass},
		Backend{Name: "file", Store: file},
	)
	require.NoError(t, err)

	return store, env, pass, file
}

func TestNewStoreRejectsMissingBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore()
	require.Error(t, err)

	_, err = NewStore(Backend{Name: "env"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "env")
}

func TestStoreGetUsesFirstBackendThatSucceeds(t *testing.T) {
	t.Parallel()

	store, env, _, _ := newTestChain(t)
	env.EXPECT().Get(mock.Anything, apiKeyRef).Return("from-env", nil).Once()

	value, err := store.Get(context.Background(), apiKeyRef)
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
}

func TestStoreGetFallsThroughInOrder(t *testing.T) {
	t.Parallel()

	store, env, pass, file := newTestChain(t)
	env.EXPECT().Get(mock.Anything, apiKeyRef).Return("", domain.ErrSecretNotFound).Once()
	pass.EXPECT().Get(mock.Anything, apiKeyRef).Return("", errors.New("pass unavailable")).Once()
	file.EXPECT().Get(mock.Anything, apiKeyRef).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), apiKeyRef)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsNotFoundOnlyWhenEveryBackendAgrees(t *testing.T) {
	t.Parallel()

	store, env, pass, file := newTestChain(t)
	env.EXPECT().Get(mock.Anything, apiKeyRef).Return("", domain.ErrSecretNotFound).Once()
	pass.EXPECT().Get(mock.Anything, apiKeyRef).Return("", domain.ErrSecretNotFound).Once()
	file.EXPECT().Get(mock.Anything, apiKeyRef).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), apiKeyRef)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "env backend")
	assert.ErrorContains(t, err, "file backend")
}

func TestStoreGetReturnsRealFailuresOverNotFound(t *testing.T) {
	t.Parallel()

	store, env, pass, file := newTestChain(t)
	env.EXPECT().Get(mock.Anything, apiKeyRef).Return("", domain.ErrSecretNotFound).Once()
	pass.EXPECT().Get(mock.Anything, apiKeyRef).Return("", errors.New("gpg failed")).Once()
	file.EXPECT().Get(mock.Anything, apiKeyRef).Return("", errors.New("permission denied")).Once()

	_, err := store.Get(context.Background(), apiKeyRef)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "pass backend")
	assert.ErrorContains(t, err, "gpg failed")
	assert.ErrorContains(t, err, "permission denied")
}

func TestStorePutSkipsReadOnlyBackends(t *testing.T) {
	t.Parallel()

	store, env, pass, _ := newTestChain(t)
	env.EXPECT().Put(mock.Anything, apiKeyRef, "secret").Return(errors.New("read-only")).Once()
	pass.EXPECT().Put(mock.Anything, apiKeyRef, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), apiKeyRef, "secret"))
}

func TestStorePutReturnsCombinedErrorWhenAllBackendsFail(t *testing.T) {
	t.Parallel()

	store, env, pass, file := newTestChain(t)
	env.EXPECT().Put(mock.Anything, apiKeyRef, "secret").Return(errors.New("read-only")).Once()
	pass.EXPECT().Put(mock.Anything, apiKeyRef, "secret").Return(errors.New("pass failed")).Once()
	file.EXPECT().Put(mock.Anything, apiKeyRef, "secret").Return(errors.New("disk full")).Once()

	err := store.Put(context.Background(), apiKeyRef, "secret")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "disk full")
}

func TestStoreDeleteReachesEveryBackend(t *testing.T) {
	t.Parallel()

	store, env, pass, file := newTestChain(t)
	env.EXPECT().Delete(mock.Anything, apiKeyRef).Return(errors.New("read-only")).Once()
	pass.EXPECT().Delete(mock.Anything, apiKeyRef).Return(nil).Once()
	file.EXPECT().Delete(mock.Anything, apiKeyRef).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), apiKeyRef))
}

func TestStoreDeleteFailsWhenNoBackendDeleted(t *testing.T) {
	t.Parallel()

	store, env, pass, file := newTestChain(t)
	env.EXPECT().Delete(mock.Anything, apiKeyRef).Return(errors.New("read-only")).Once()
	pass.EXPECT().Delete(mock.Anything, apiKeyRef).Return(errors.New("pass failed")).Once()
	file.EXPECT().Delete(mock.Anything, apiKeyRef).Return(errors.New("busy")).Once()

	err := store.Delete(context.Background(), apiKeyRef)
	require.Error(t, err)
	assert.ErrorContains(t, err, "busy")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	store, env, _, _ := newTestChain(t)
	env.EXPECT().Get(mock.Anything, apiKeyRef).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), apiKeyRef)
	require.ErrorIs(t, err, context.Canceled)
}
