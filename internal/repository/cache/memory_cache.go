package cache

import (
	"context"
	"time"

	"github.com/airport-tracker/internal/domain/repository"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryCache - кеш в памяти процесса для запуска без Redis.
// Записи истекают по абсолютному возрасту, размер ограничен (вытеснение LRU).
type memoryCache struct {
	lru    *expirable.LRU[string, memoryEntry]
	logger *zap.Logger
}

// NewMemoryCache создаёт кеш на size записей. maxTTL - верхняя граница жизни записи,
// ttl в Set может быть только меньше.
func NewMemoryCache(size int, maxTTL time.Duration, logger *zap.Logger) repository.CacheRepository {
	if size <= 0 {
		size = 1024
	}
	return &memoryCache{
		lru:    expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		logger: logger,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.lru.Remove(key)
		return nil, nil
	}

	c.logger.Debug("Memory cache hit", zap.String("key", key))
	return entry.value, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.lru.Add(key, entry)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	v, err := c.Get(ctx, key)
	return v != nil, err
}
