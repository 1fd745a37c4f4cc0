package pkg

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jobhunter"

	"github.com/redis/go-redis/v9"
)

// RedisEnabled reports whether a Redis connection was configured.
func RedisEnabled() bool {
	return jobhunter.Redis != nil
}

// RedisSet stores a value in Redis with a TTL. The value is JSON-serialized.
func RedisSet(ctx context.Context, key string, value any, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return jobhunter.Redis.Set(ctx, key, data, ttl).Err()
}

// RedisGet retrieves a value from Redis and JSON-deserializes it into dest.
// Returns redis.Nil if the key does not exist.
func RedisGet(ctx context.Context, key string, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := jobhunter.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// IsRedisNil returns true if the error is a redis key-not-found error.
func IsRedisNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
