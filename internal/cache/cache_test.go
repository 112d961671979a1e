package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/content-admin/internal/content"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisWithClient(client, "test", time.Minute)
	t.Cleanup(func() { _ = r.Close() })

	return r, mr
}

func backends(t *testing.T) map[string]content.Cache {
	r, _ := newTestRedis(t)
	return map[string]content.Cache{
		"memory": NewMemory(0),
		"redis":  r,
	}
}

func TestCache_Behaviour(t *testing.T) {
	ctx := context.Background()

	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			listKey := "list:page=0"
			itemKey := content.ItemKey("42")

			_, gen, ok, err := c.Lookup(ctx, content.TypeFAQ, listKey)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, gen)

			require.NoError(t, c.Store(ctx, content.TypeFAQ, listKey, 0, []byte(`faqs`)))
			require.NoError(t, c.Store(ctx, content.TypeNotice, listKey, 0, []byte(`notices`)))
			require.NoError(t, c.Store(ctx, content.TypeFAQ, itemKey, 0, []byte(`item`)))

			data, _, ok, err := c.Lookup(ctx, content.TypeFAQ, listKey)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`faqs`), data)

			require.NoError(t, c.InvalidateList(ctx, content.TypeFAQ))

			_, gen, ok, err = c.Lookup(ctx, content.TypeFAQ, listKey)
			require.NoError(t, err)
			assert.False(t, ok, "listing must be gone after invalidation")
			assert.Equal(t, int64(1), gen)

			data, _, ok, err = c.Lookup(ctx, content.TypeNotice, listKey)
			require.NoError(t, err)
			assert.True(t, ok, "other types are unaffected")
			assert.Equal(t, []byte(`notices`), data)

			_, _, ok, err = c.Lookup(ctx, content.TypeFAQ, itemKey)
			require.NoError(t, err)
			assert.True(t, ok, "items survive a listing invalidation")

			require.NoError(t, c.InvalidateItem(ctx, content.TypeFAQ, "42"))
			_, _, ok, err = c.Lookup(ctx, content.TypeFAQ, itemKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, c.Store(ctx, content.TypeFAQ, listKey, 1, []byte(`fresh`)))
			data, _, ok, err = c.Lookup(ctx, content.TypeFAQ, listKey)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`fresh`), data)
		})
	}
}

func TestMemory_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Store(ctx, content.TypeTerm, "list:a", 0, []byte("x")))
	_, _, ok, _ := m.Lookup(ctx, content.TypeTerm, "list:a")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, _, ok, _ = m.Lookup(ctx, content.TypeTerm, "list:a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_InvalidateDropsEntries(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	for _, k := range []string{"list:a", "list:b", content.ItemKey("1")} {
		require.NoError(t, m.Store(ctx, content.TypeBanner, k, 0, []byte("x")))
	}
	require.Equal(t, 3, m.Len())

	require.NoError(t, m.InvalidateList(ctx, content.TypeBanner))
	assert.Equal(t, 1, m.Len())
}

func TestRedis_GenerationAndTTL(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	require.NoError(t, r.Store(ctx, content.TypeBanner, "list:a", 0, []byte("x")))
	assert.True(t, mr.Exists("test:banners:list:0:list:a"))
	assert.Equal(t, time.Minute, mr.TTL("test:banners:list:0:list:a"))

	require.NoError(t, r.InvalidateList(ctx, content.TypeBanner))
	got, err := mr.Get("test:banners:gen")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("test:banners:list:0:list:a"))
}

func TestRedis_Unavailable(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)
	addr := mr.Addr()
	mr.Close()

	_, _, _, err := r.Lookup(ctx, content.TypeFAQ, "list:a")
	assert.Error(t, err)
	assert.Error(t, r.Store(ctx, content.TypeFAQ, "list:a", 0, []byte("x")))
	assert.Error(t, r.InvalidateList(ctx, content.TypeFAQ))
	assert.Error(t, r.InvalidateItem(ctx, content.TypeFAQ, "1"))

	_, err = NewRedis(ctx, RedisOptions{Addr: addr})
	assert.Error(t, err)
}

func TestCache_StaleStoreIsDropped(t *testing.T) {
	ctx := context.Background()

	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			listKey := "list:page=0"
			itemKey := content.ItemKey("7")

			_, listGen, ok, err := c.Lookup(ctx, content.TypeBanner, listKey)
			require.NoError(t, err)
			require.False(t, ok)
			_, itemGen, ok, err := c.Lookup(ctx, content.TypeBanner, itemKey)
			require.NoError(t, err)
			require.False(t, ok)

			// a mutation lands between the miss and the write-back
			require.NoError(t, c.InvalidateItem(ctx, content.TypeBanner, "7"))
			require.NoError(t, c.InvalidateList(ctx, content.TypeBanner))

			require.NoError(t, c.Store(ctx, content.TypeBanner, listKey, listGen, []byte(`old page`)))
			require.NoError(t, c.Store(ctx, content.TypeBanner, itemKey, itemGen, []byte(`old item`)))

			_, _, ok, err = c.Lookup(ctx, content.TypeBanner, listKey)
			require.NoError(t, err)
			assert.False(t, ok, "listing read before the mutation must not be cached")

			_, _, ok, err = c.Lookup(ctx, content.TypeBanner, itemKey)
			require.NoError(t, err)
			assert.False(t, ok, "item read before the mutation must not be cached")
		})
	}
}

func TestRedis_NoTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	r := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test", 0)
	t.Cleanup(func() { _ = r.Close() })

	require.NoError(t, r.Store(ctx, content.TypeFAQ, content.ItemKey("1"), 0, []byte("x")))
	assert.True(t, mr.Exists("test:faqs:item:1"))
	assert.Zero(t, mr.TTL("test:faqs:item:1"))
}
