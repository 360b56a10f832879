package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisCacheRoundTrip runs against a live server when
// MOODTRACK_TEST_REDIS_ADDR is set.
func TestRedisCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("MOODTRACK_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MOODTRACK_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	c := NewRedisCache(RedisOptions{Addr: addr, KeyPrefix: "moodtrack-test:"})
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	require.NoError(t, c.Set(ctx, "perm:u1", permissions{Role: "admin"}, time.Minute))

	var got permissions
	ok, err := c.Get(ctx, "perm:u1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin", got.Role)

	require.NoError(t, c.Delete(ctx, "perm:u1"))
	ok, err = c.Get(ctx, "perm:u1", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}
