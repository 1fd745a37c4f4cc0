package pkg

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"jobhunter"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	previous := jobhunter.Redis
	jobhunter.Redis = client
	t.Cleanup(func() {
		jobhunter.Redis = previous
		client.Close()
	})
	return mr
}

func TestRedisSetGet(t *testing.T) {
	useTestRedis(t)
	ctx := context.Background()
	require.True(t, RedisEnabled())

	require.NoError(t, RedisSet(ctx, "k", map[string]int{"a": 1}, time.Minute))
	var got map[string]int
	require.NoError(t, RedisGet(ctx, "k", &got))
	assert.Equal(t, map[string]int{"a": 1}, got)

	err := RedisGet(ctx, "missing", &got)
	assert.True(t, IsRedisNil(err))
}

func TestJSearchClient_CachesResults(t *testing.T) {
	mr := useTestRedis(t)

	var hits atomic.Int32
	client := newTestSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","data":[{"job_id":"j1","job_title":"Gopher","employer_name":"Acme"}]}`))
	})
	client.cacheTTL = 10 * time.Minute

	params := SearchParams{Query: "golang", RemoteOnly: true}
	first, err := client.Search(context.Background(), params)
	require.NoError(t, err)
	second, err := client.Search(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load(), "second search must be served from the cache")
	assert.Equal(t, first, second)

	key := "jsearch:" + params.values().Encode()
	require.True(t, mr.Exists(key))
	assert.Equal(t, 10*time.Minute, mr.TTL(key))

	// a different query misses the cache
	_, err = client.Search(context.Background(), SearchParams{Query: "rust"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestJSearchClient_NoCacheWithoutRedis(t *testing.T) {
	previous := jobhunter.Redis
	jobhunter.Redis = nil
	t.Cleanup(func() { jobhunter.Redis = previous })

	var hits atomic.Int32
	client := newTestSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"status":"OK","data":[]}`))
	})
	client.cacheTTL = 10 * time.Minute

	for i := 0; i < 2; i++ {
		_, err := client.Search(context.Background(), SearchParams{Query: "golang"})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), hits.Load())
}
