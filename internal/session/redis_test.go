package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	store, err := NewRedisStore("redis://"+mr.Addr(), 24*time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, mr
}

func TestRedisStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, Data{UserID: 7, Username: "alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	data, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, uint(7), data.UserID)
	assert.Equal(t, "alice", data.Username)
}

// The session hash must never exist without an expiration.
func TestRedisStore_CreateSetsTTL(t *testing.T) {
	store, mr := newTestStore(t)

	id, err := store.Create(context.Background(), Data{UserID: 1, Username: "alice"})
	require.NoError(t, err)

	ttl := mr.TTL(sessionKey(id))
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestRedisStore_GetUnknownSession(t *testing.T) {
	store, _ := newTestStore(t)

	data, err := store.Get(context.Background(), "does-not-exist")

	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestRedisStore_Destroy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, Data{UserID: 1, Username: "alice"})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, id))

	data, err := store.Get(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestRedisStore_SessionExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, Data{UserID: 1, Username: "alice"})
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	data, err := store.Get(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, data)
}
