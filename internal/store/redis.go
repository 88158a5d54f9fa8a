package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func init() {
	Register("redis", newRedisStore)
}

// redisStore keeps every page under its own key, {prefix}{page id}.
// Expiry is handled server-side: SET writes the page with a PX TTL and GETEX
// pushes the TTL forward on every read, so untouched pages disappear on their own.
// Size is not enforced; Redis memory policy decides what happens under pressure.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
	prefix string
}

func newRedisStore(cfg ProviderConfig) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Verify connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisStore{
		client: client,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *redisStore) key(id string) string {
	return r.prefix + id
}

func (r *redisStore) logError(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}

func (r *redisStore) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := r.client.GetEx(ctx, r.key(key), r.ttl).Bytes()
	if err != nil {
		// redis.Nil is a plain miss.
		if !errors.Is(err, redis.Nil) {
			r.logError("redis store Get failed", err)
		}
		return nil, false
	}
	return result, true
}

func (r *redisStore) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		r.logError("redis store Set failed", err)
	}
}

func (r *redisStore) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logError("redis store Delete failed", err)
	}
}

// Len walks the key space with SCAN, so it is meant for metrics scrapes, not hot paths.
func (r *redisStore) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count := 0
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 500).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		r.logError("redis store Len failed", err)
		return 0
	}
	return count
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
