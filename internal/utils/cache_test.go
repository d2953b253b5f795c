package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCacheRoundTrip(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	found, err := GetCache(ctx, rdb, "missing", &payload{})
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, SetCache(ctx, rdb, "key", payload{Name: "A"}, time.Minute))

	var got payload
	found, err = GetCache(ctx, rdb, "key", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "A", got.Name)
}

func TestInvalidateUserCaches(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, SetCache(ctx, rdb, UsersCacheKey, []string{"a"}, time.Minute))
	require.NoError(t, SetCache(ctx, rdb, ProfileCacheKey, "a", time.Minute))
	require.NoError(t, InvalidateUserCaches(ctx, rdb))

	var dest any
	found, err := GetCache(ctx, rdb, UsersCacheKey, &dest)
	require.NoError(t, err)
	require.False(t, found)
	found, err = GetCache(ctx, rdb, ProfileCacheKey, &dest)
	require.NoError(t, err)
	require.False(t, found)
}
