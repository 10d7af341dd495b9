package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
)

func TestCacheRoundTrip(t *testing.T) {
	cache := memory.NewCacheRepository()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", []byte("value"), time.Minute))

	value, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	exists, err := cache.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	cache := memory.NewCacheRepository()

	_, err := cache.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, memory.ErrCacheMiss)
}

func TestCacheExpiresLazily(t *testing.T) {
	cache := memory.NewCacheRepository()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", []byte("value"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, memory.ErrCacheMiss)

	exists, err := cache.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCacheDelete(t *testing.T) {
	cache := memory.NewCacheRepository()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", []byte("value"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, memory.ErrCacheMiss)
}
