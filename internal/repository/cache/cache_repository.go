package cache

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// keyPrefix отделяет ключи сервиса от других пользователей того же Redis
const keyPrefix = "airport-tracker:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository - кеш на Redis; ошибки возвращаются как ErrCacheError
func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	switch {
	case stderrors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		r.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, errors.ErrCacheError.Wrap(err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key), zap.Int("bytes", len(val)))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		r.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError.Wrap(err)
	}
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.ErrCacheError.Wrap(err)
	}
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, errors.ErrCacheError.Wrap(err)
	}
	return n > 0, nil
}
