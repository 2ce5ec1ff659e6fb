package redisstore_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/authenticator"
	"github.com/dmitrymomot/authenticator/pkg/redisstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the Redis instance named by REDIS_TEST_URL, or
// skips the test when none is available.
func newTestStore(t *testing.T) *redisstore.Store {
	t.Helper()

	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set, skipping redis integration test")
	}

	client, err := redisstore.Connect(context.Background(), redisstore.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		RetryInterval:  time.Second,
		ConnectTimeout: 5 * time.Second,
	}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return redisstore.New(client, redisstore.WithKeyPrefix("totp:test:"+t.Name()+":"))
}

func TestStore_SaveAndGetSecret(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "SECRETKEY", 123456, []int{12345678, 87654321}))

	secret, err := store.GetSecret(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "SECRETKEY", secret)

	codes, err := store.ScratchCodes(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []int{12345678, 87654321}, codes)
}

func TestStore_GetSecret_UnknownUser(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetSecret(context.Background(), "nobody")
	assert.ErrorIs(t, err, authenticator.ErrUserNotFound)
}

func TestStore_Save_Replaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "OLD", 1, []int{11111111, 22222222}))
	require.NoError(t, store.Save(ctx, "alice", "NEW", 2, []int{33333333}))

	secret, err := store.GetSecret(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "NEW", secret)

	codes, err := store.ScratchCodes(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []int{33333333}, codes)
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := redisstore.Connect(context.Background(), redisstore.Config{
		ConnectionURL:  "not-a-url",
		RetryAttempts:  1,
		RetryInterval:  time.Millisecond,
		ConnectTimeout: time.Second,
	}, nil)
	assert.ErrorIs(t, err, redisstore.ErrFailedToParseConnString)
}
