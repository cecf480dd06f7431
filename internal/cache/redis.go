package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore is a Store backed by a shared Redis instance, for deployments
// where several replicas should share one upstream request quota.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *logrus.Logger
}

// NewRedisStore creates a Redis-backed store. All keys are namespaced under
// prefix to allow multiple caches on one instance.
func NewRedisStore(addr string, db int, prefix string, logger *logrus.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
		logger: logger,
	}, nil
}

func (r *RedisStore) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

// Get returns the cached value for key. Redis errors are treated as misses
// so an unavailable cache degrades to refetching, never to request failure.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err != redis.Nil && r.logger != nil {
			r.logger.WithError(err).WithField("key", key).Warn("Redis get failed, treating as miss")
		}
		return nil, false
	}
	return val, true
}

// Set stores value under key for ttl.
func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil && r.logger != nil {
		r.logger.WithError(err).WithField("key", key).Warn("Redis set failed")
	}
}

// Delete removes key if present.
func (r *RedisStore) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil && r.logger != nil {
		r.logger.WithError(err).WithField("key", key).Warn("Redis delete failed")
	}
}

// Close releases the underlying connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
