package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	passstore "github.com/bnema/dcms-cli/internal/adapters/kv/pass"
	"github.com/bnema/dcms-cli/internal/domain"
	portmocks "github.com/bnema/dcms-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const key = "dcms_user.toml"

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsMissingWhenNeitherBackendHasKey(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", fmt.Errorf("pass get: %w", domain.ErrKeyNotFound)).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", fmt.Errorf("read: %w", domain.ErrKeyNotFound)).Once()

	_, err := store.Get(context.Background(), key)
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
	assert.NotContains(t, err.Error(), "primary backend")
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), key)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutFallsBackOnlyWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, key, "v1").Return(nil).Once()
	primary.EXPECT().Put(mock.Anything, key, "v2").Return(errors.New("pass unavailable")).Once()
	fallback.EXPECT().Put(mock.Anything, key, "v2").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), key, "v1"))
	require.NoError(t, store.Put(context.Background(), key, "v2"))
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, key).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), key))
}

func TestStoreDeleteReportsEitherFailure(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, key).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

	err := store.Delete(context.Background(), key)
	assert.ErrorContains(t, err, "primary backend delete failed: pass failed")
}

func TestStoreDeleteIgnoresMissingPassCommand(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, key).Return(fmt.Errorf("pass delete: %w", passstore.ErrUnavailable)).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), key))
}

func TestStoreDoesNotFallBackOnCancellation(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", context.Canceled).Once()
	primary.EXPECT().Delete(mock.Anything, key).Return(context.DeadlineExceeded).Once()

	_, err := store.Get(context.Background(), key)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Delete(context.Background(), key), context.DeadlineExceeded)
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockKeyValueStore(t))
	assert.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockKeyValueStore(t), nil)
	assert.ErrorIs(t, err, errNilFallbackStore)
}
