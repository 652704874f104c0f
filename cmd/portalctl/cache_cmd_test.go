package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/billing-portal/pkg/querycache"
)

func TestCacheFlushCmd(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := querycache.New(querycache.NewRedisStoreFromClient(client), querycache.Options{TTL: time.Minute, Prefix: "test"})
	ctx := context.Background()
	fetch := func(context.Context) (string, error) { return "x", nil }
	for _, k := range []querycache.Key{
		{Operation: "getPortalOrgaInfos", Token: "t1"},
		{Operation: "getPortalCustomerInfos", Token: "t1"},
		{Operation: "getPortalOrgaInfos", Token: "t2"},
	} {
		_, err := querycache.Fetch(ctx, cache, querycache.CacheFirst, k, fetch)
		require.NoError(t, err)
	}
	require.Len(t, mr.Keys(), 3)

	out, err := runRoot(t, "cache", "flush", "--redis-url", mr.Addr(), "--prefix", "test", "--token", "t1")
	require.NoError(t, err)
	require.Equal(t, "flushed\n", out)
	require.Len(t, mr.Keys(), 1)
}

func TestCacheFlushCmd_RequiresToken(t *testing.T) {
	mr := miniredis.RunT(t)
	_, err := runRoot(t, "cache", "flush", "--redis-url", mr.Addr(), "--prefix", "test")
	require.Error(t, err)
}

func TestCacheFlushCmd_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err := runRoot(t, "cache", "flush", "--redis-url", addr, "--prefix", "test", "--token", "t1")
	require.Error(t, err)
}
