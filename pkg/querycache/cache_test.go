package querycache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type orgInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func countingFetch(calls *int, name string) func(context.Context) (orgInfo, error) {
	return func(context.Context) (orgInfo, error) {
		*calls++
		return orgInfo{ID: "org-1", Name: name}, nil
	}
}

func newMemoryCache() *Cache {
	return New(NewMemoryStore(32, time.Minute), Options{TTL: time.Minute})
}

func TestFetch_CacheFirstHitsNetworkOnce(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()
	key := Key{Operation: "getPortalOrgaInfos", Token: "tok-a"}

	calls := 0
	first, err := Fetch(ctx, c, CacheFirst, key, countingFetch(&calls, "Acme"))
	require.NoError(t, err)
	second, err := Fetch(ctx, c, CacheFirst, key, countingFetch(&calls, "Changed"))
	require.NoError(t, err)

	require.Equal(t, 1, calls)
	require.Equal(t, "Acme", first.Name)
	require.Equal(t, "Acme", second.Name)
}

func TestFetch_NetworkOnlyAlwaysFetchesAndRefreshes(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()
	key := Key{Operation: "customerPortalEvents", Variables: map[string]any{"page": 1}, Token: "tok-a"}

	calls := 0
	_, err := Fetch(ctx, c, NetworkOnly, key, countingFetch(&calls, "v1"))
	require.NoError(t, err)
	_, err = Fetch(ctx, c, NetworkOnly, key, countingFetch(&calls, "v2"))
	require.NoError(t, err)
	require.Equal(t, 2, calls)

	cached, err := Fetch(ctx, c, CacheFirst, key, countingFetch(&calls, "v3"))
	require.NoError(t, err)
	require.Equal(t, "v2", cached.Name)
	require.Equal(t, 2, calls)
}

func TestFetch_KeysAreScopedByTokenAndVariables(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()

	calls := 0
	for _, k := range []Key{
		{Operation: "op", Token: "a", Variables: map[string]any{"page": 1}},
		{Operation: "op", Token: "b", Variables: map[string]any{"page": 1}},
		{Operation: "op", Token: "a", Variables: map[string]any{"page": 2}},
		{Operation: "op", Token: "a", Variables: map[string]any{"page": 1}},
	} {
		_, err := Fetch(ctx, c, CacheFirst, k, countingFetch(&calls, "x"))
		require.NoError(t, err)
	}
	require.Equal(t, 3, calls)
	require.NotContains(t, c.key(Key{Operation: "op", Token: "secret-token"}), "secret-token")
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()
	key := Key{Operation: "op", Token: "a"}

	_, err := Fetch(ctx, c, CacheFirst, key, func(context.Context) (orgInfo, error) {
		return orgInfo{}, errors.New("boom")
	})
	require.Error(t, err)

	calls := 0
	_, err = Fetch(ctx, c, CacheFirst, key, countingFetch(&calls, "ok"))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestCache_Invalidate(t *testing.T) {
	store := NewMemoryStore(32, time.Minute)
	c := New(store, Options{TTL: time.Minute})
	ctx := context.Background()

	calls := 0
	_, _ = Fetch(ctx, c, CacheFirst, Key{Operation: "a", Token: "t1"}, countingFetch(&calls, "x"))
	_, _ = Fetch(ctx, c, CacheFirst, Key{Operation: "b", Token: "t1"}, countingFetch(&calls, "x"))
	_, _ = Fetch(ctx, c, CacheFirst, Key{Operation: "a", Token: "t2"}, countingFetch(&calls, "x"))
	require.Equal(t, 3, store.Len())

	require.NoError(t, c.Invalidate(ctx, "t1"))
	require.Equal(t, 1, store.Len())
}

func TestMemoryStore_PerEntryTTL(t *testing.T) {
	store := NewMemoryStore(4, time.Hour)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store down")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store down")
}

func (failingStore) DeletePrefix(context.Context, string) error {
	return errors.New("store down")
}

func TestFetch_StoreFailureFallsBackToNetwork(t *testing.T) {
	c := New(failingStore{}, Options{})
	calls := 0
	got, err := Fetch(context.Background(), c, CacheFirst, Key{Operation: "op"}, countingFetch(&calls, "net"))
	require.NoError(t, err)
	require.Equal(t, "net", got.Name)
	require.Equal(t, 1, calls)
}

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStoreFromClient(client), mr
}

func TestRedisStore_RoundTripAndExpiry(t *testing.T) {
	store, mr := setupRedisStore(t)
	c := New(store, Options{TTL: 30 * time.Second})
	ctx := context.Background()
	key := Key{Operation: "getPortalCustomerInfos", Token: "tok"}

	calls := 0
	_, err := Fetch(ctx, c, CacheFirst, key, countingFetch(&calls, "Acme"))
	require.NoError(t, err)
	got, err := Fetch(ctx, c, CacheFirst, key, countingFetch(&calls, "Other"))
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name)
	require.Equal(t, 1, calls)

	mr.FastForward(time.Minute)
	got, err = Fetch(ctx, c, CacheFirst, key, countingFetch(&calls, "Other"))
	require.NoError(t, err)
	require.Equal(t, "Other", got.Name)
	require.Equal(t, 2, calls)
}

func TestRedisStore_DeletePrefix(t *testing.T) {
	store, mr := setupRedisStore(t)
	c := New(store, Options{TTL: time.Minute})
	ctx := context.Background()

	calls := 0
	_, _ = Fetch(ctx, c, CacheFirst, Key{Operation: "a", Token: "t1"}, countingFetch(&calls, "x"))
	_, _ = Fetch(ctx, c, CacheFirst, Key{Operation: "a", Token: "t2"}, countingFetch(&calls, "x"))
	require.Len(t, mr.Keys(), 2)

	require.NoError(t, c.Invalidate(ctx, "t1"))
	require.Len(t, mr.Keys(), 1)
}

func TestNewRedisStore_ConnectFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStore(context.Background(), addr)
	require.Error(t, err)
}
