// Package lock provides the redis implementation of the reservation lock:
// a SETNX key per contended resource, valued with the holder token so only
// the owner can release it, and a TTL so a crashed holder cannot wedge the
// resource forever.
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reservation_lock:"

type RedisLock struct {
	client *redis.Client
}

func NewRedisLock(client *redis.Client) *RedisLock {
	return &RedisLock{client: client}
}

// Acquire takes the lock for holder. It returns false without error when
// another holder already owns it.
func (l *RedisLock) Acquire(ctx context.Context, resource, holder string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, keyPrefix+resource, holder, ttl).Result()
}

// Release drops the lock, but only when holder still owns it; a lock that
// expired and was re-acquired by someone else is left alone.
func (l *RedisLock) Release(ctx context.Context, resource, holder string) error {
	key := keyPrefix + resource
	owner, err := l.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}
	if owner != holder {
		return nil
	}
	return l.client.Del(ctx, key).Err()
}
