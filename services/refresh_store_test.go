package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/errors"
)

func newTestRefreshStore(t *testing.T) (*RefreshTokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRefreshTokenStore(rdb), mr
}

func TestRefreshTokenStoreSaveAndValidate(t *testing.T) {
	store, _ := newTestRefreshStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-abc", 42, time.Hour))

	userID, err := store.Validate(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestRefreshTokenStoreUnknownToken(t *testing.T) {
	store, _ := newTestRefreshStore(t)

	_, err := store.Validate(context.Background(), "never-saved")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTokenRevoked))
}

func TestRefreshTokenStoreRevoke(t *testing.T) {
	store, _ := newTestRefreshStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-abc", 42, time.Hour))
	require.NoError(t, store.Revoke(ctx, "token-abc"))

	_, err := store.Validate(ctx, "token-abc")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTokenRevoked))
}

func TestRefreshTokenStoreExpiry(t *testing.T) {
	store, mr := newTestRefreshStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-abc", 42, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := store.Validate(ctx, "token-abc")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTokenRevoked))
}

func TestRefreshTokenStoreKeysAreHashed(t *testing.T) {
	store, mr := newTestRefreshStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-abc", 42, time.Hour))

	// Token thô không được xuất hiện trong key Redis
	for _, key := range mr.Keys() {
		assert.NotContains(t, key, "token-abc")
	}
}
