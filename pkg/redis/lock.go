package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultLockTTL bounds how long a crashed holder can block other processes.
const DefaultLockTTL = 10 * time.Minute

// releaseScript deletes the key only if it still holds our token,
// so an expired lease re-acquired by another process is never released.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker provides a single-holder lease on a Redis key.
// It keeps two generator processes from clearing and writing the
// same sitemap output concurrently.
type Locker struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// LockOption configures a Locker.
type LockOption func(*Locker)

// WithLockTTL sets the lease duration. Default: 10 minutes.
func WithLockTTL(d time.Duration) LockOption {
	return func(l *Locker) {
		if d > 0 {
			l.ttl = d
		}
	}
}

// WithKeyPrefix sets the key namespace. Default: "sitemap:lock:".
func WithKeyPrefix(prefix string) LockOption {
	return func(l *Locker) {
		l.prefix = prefix
	}
}

// NewLocker creates a Locker on top of client.
func NewLocker(client redis.UniversalClient, opts ...LockOption) *Locker {
	l := &Locker{
		client: client,
		prefix: "sitemap:lock:",
		ttl:    DefaultLockTTL,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lock acquires the lease for name. It does not wait: if another holder
// owns the lease, ErrLocked is returned. The returned function releases it.
func (l *Locker) Lock(ctx context.Context, name string) (func(context.Context) error, error) {
	key := l.prefix + name
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, errors.Join(ErrLockFailed, err)
	}
	if !ok {
		return nil, ErrLocked
	}

	unlock := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			return errors.Join(ErrUnlockFailed, err)
		}
		return nil
	}
	return unlock, nil
}
