//go:build integration

package session_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/workopia/pkg/redis"
	"github.com/dmitrymomot/workopia/pkg/session"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisStore(t *testing.T) *session.RedisStore {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	client, err := redis.Open(context.Background(), redis.Config{URL: url, RetryAttempts: 1, RetryInterval: time.Second})
	require.NoError(t, err, "failed to connect to Redis")
	t.Cleanup(func() { _ = client.Close() })

	return session.NewRedisStore(client, session.WithRedisPrefix("test-session-"+uuid.NewString()))
}

func TestRedisStore_Roundtrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	sess := session.New(uuid.NewString(), uuid.NewString(), time.Now().Add(time.Hour))
	sess.SetUser(session.User{ID: 7, Name: "Jane"})
	sess.SetValue("theme", "dark")
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	require.NotNil(t, got.User)
	assert.Equal(t, int64(7), got.User.ID)
	assert.Equal(t, "dark", got.Values["theme"])

	require.NoError(t, store.Delete(ctx, sess.Token))
	_, err = store.Get(ctx, sess.Token)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStore_Flash(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)
	sid := uuid.NewString()

	require.NoError(t, store.SetFlash(ctx, sid, session.FlashSuccess, "saved"))

	msg, ok, err := store.TakeFlash(ctx, sid, session.FlashSuccess)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "saved", msg)

	_, ok, err = store.TakeFlash(ctx, sid, session.FlashSuccess)
	require.NoError(t, err)
	assert.False(t, ok)
}
