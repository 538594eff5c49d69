package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krimson/fluid-balance/internal/balance"
)

func newTestSession(id string) *FormSession {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &FormSession{
		ID:        id,
		Inputs:    balance.DefaultInputs(),
		Recorder:  "Nurse Tanaka",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), ttl)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

// storeContract общие проверки для всех реализаций Store
func storeContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		s := newTestSession("s-1")
		require.NoError(t, store.Save(ctx, s))

		got, err := store.Get(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})

	t.Run("stored value is a copy", func(t *testing.T) {
		s := newTestSession("s-2")
		require.NoError(t, store.Save(ctx, s))
		s.Inputs.Intake.Oral = 1

		got, err := store.Get(ctx, "s-2")
		require.NoError(t, err)
		assert.Equal(t, 2500.0, got.Inputs.Intake.Oral)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newTestSession("s-3")))
		require.NoError(t, store.Delete(ctx, "s-3"))

		_, err := store.Get(ctx, "s-3")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.ErrorIs(t, store.Delete(ctx, "s-3"), ErrSessionNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore(time.Hour))
}

func TestRedisStore(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	storeContract(t, store)
}

func TestRedisStore_KeyAndTTL(t *testing.T) {
	store, mr := newRedisStore(t, 10*time.Minute)
	require.NoError(t, store.Save(context.Background(), newTestSession("abc")))

	assert.True(t, mr.Exists("form:abc"))
	assert.Equal(t, 10*time.Minute, mr.TTL("form:abc"))

	mr.FastForward(11 * time.Minute)
	_, err := store.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	mr.Close()

	assert.Error(t, store.Ping(context.Background()))
	_, err := store.Get(context.Background(), "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Hour)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, newTestSession("a")))
	assert.Equal(t, 1, store.Len())

	now = now.Add(59 * time.Minute)
	_, err := store.Get(ctx, "a")
	require.NoError(t, err)

	// сохранение продлевает TTL
	require.NoError(t, store.Save(ctx, newTestSession("a")))
	now = now.Add(59 * time.Minute)
	_, err = store.Get(ctx, "a")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())

	require.NoError(t, store.Save(ctx, newTestSession("b")))
	store.mu.RLock()
	_, stale := store.sessions["a"]
	store.mu.RUnlock()
	assert.False(t, stale, "expired entries are evicted on save")
}
