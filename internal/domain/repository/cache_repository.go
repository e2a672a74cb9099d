package repository

import (
	"context"
	"time"
)

// CacheRepository - байтовый кеш с TTL. Промах - (nil, nil), не ошибка.
// Используется провайдером рейсов для ответов OpenSky.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
