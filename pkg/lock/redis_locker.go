package lock

import (
	"context"
	"fmt"
	"time"

	"frugal-friend/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker backed by Redis SET NX PX, suitable when several
// service replicas share the same database.
type RedisLocker struct {
	client        *redis.Client
	logger        *logger.Logger
	prefix        string
	ttl           time.Duration
	retryInterval time.Duration
}

// NewRedisLocker creates a RedisLocker. ttl bounds how long a crashed holder can
// block others; retryInterval is the polling delay while the key is taken.
func NewRedisLocker(client *redis.Client, log *logger.Logger, prefix string, ttl, retryInterval time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if retryInterval <= 0 {
		retryInterval = 25 * time.Millisecond
	}
	return &RedisLocker{
		client:        client,
		logger:        log,
		prefix:        prefix,
		ttl:           ttl,
		retryInterval: retryInterval,
	}
}

// Lock implements Locker.
func (l *RedisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	redisKey := l.prefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(l.retryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return func() {
		// The caller's ctx may already be cancelled; release must still happen.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
			l.logger.Error("Failed to release lock", logger.ErrorField(err), logger.StringField("key", key))
		}
	}, nil
}
