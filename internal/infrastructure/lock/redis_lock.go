// Package lock provides a cluster-wide lock on Redis for scheduled jobs.
//
// A lock is taken with SET NX PX so it expires on its own after atMost even
// if the holder dies. Release keeps the key alive until atLeast has passed
// since acquisition, so a fast run on one node stops other nodes from
// repeating the same scheduled slot.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:"

// releaseScript deletes the key, or shortens its TTL to the remaining
// minimum hold, but only while the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) ~= ARGV[1] then
	return 0
end
local keep = tonumber(ARGV[2])
if keep > 0 then
	return redis.call("PEXPIRE", KEYS[1], keep)
end
return redis.call("DEL", KEYS[1])
`)

type Lock interface {
	Release(ctx context.Context) error
}

type RedisLocker struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client, now: time.Now}
}

// TryAcquire returns ok=false without error when another holder owns name
func (l *RedisLocker) TryAcquire(ctx context.Context, name string, atLeast, atMost time.Duration) (Lock, bool, error) {
	if atMost <= 0 {
		return nil, false, fmt.Errorf("lock %q: atMost must be positive", name)
	}
	if atLeast > atMost {
		return nil, false, fmt.Errorf("lock %q: atLeast %s exceeds atMost %s", name, atLeast, atMost)
	}

	token := uuid.NewString()
	key := keyPrefix + name
	ok, err := l.client.SetNX(ctx, key, token, atMost).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %q: %w", name, err)
	}
	if !ok {
		return nil, false, nil
	}

	return &redisLock{
		locker:     l,
		key:        key,
		token:      token,
		acquiredAt: l.now(),
		atLeast:    atLeast,
	}, true, nil
}

type redisLock struct {
	locker     *RedisLocker
	key        string
	token      string
	acquiredAt time.Time
	atLeast    time.Duration
}

func (r *redisLock) Release(ctx context.Context) error {
	keep := r.atLeast - r.locker.now().Sub(r.acquiredAt)
	keepMs := keep.Milliseconds()
	if keepMs < 0 {
		keepMs = 0
	}

	if err := releaseScript.Run(ctx, r.locker.client, []string{r.key}, r.token, keepMs).Err(); err != nil {
		return fmt.Errorf("failed to release lock %q: %w", r.key, err)
	}
	return nil
}
