package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/airport-tracker/internal/config"
	"github.com/airport-tracker/internal/repository/cache"
)

func newTestRedis(t *testing.T) *cache.Redis {
	r, err := cache.NewRedis(&config.RedisConfig{Host: "localhost", Port: 6379, DB: 1}, zap.NewNop())
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestCacheRepository_Redis(t *testing.T) {
	repo := cache.NewCacheRepository(newTestRedis(t))
	ctx := context.Background()
	key := "test:opensky:flights:UUEE:24"

	t.Cleanup(func() { _ = repo.Delete(ctx, key) })

	v, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, repo.Set(ctx, key, []byte(`{"departures":[]}`), time.Minute))

	v, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"departures":[]}`, string(v))

	ok, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedis_Health(t *testing.T) {
	r := newTestRedis(t)
	assert.NoError(t, r.Health(context.Background()))
}
