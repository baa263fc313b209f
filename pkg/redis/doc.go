// Package redis provides a Redis-backed lock for sitemap generation.
//
// Generation clears the sitemap directory before writing new files. Two
// processes doing that at the same time would race, so deployments running
// several replicas guard each run with a [Locker] lease.
//
// # Usage
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//		redis.WithRetry(5, time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	locker := redis.NewLocker(client, redis.WithLockTTL(5*time.Minute))
//
//	unlock, err := locker.Lock(ctx, "example.com")
//	if errors.Is(err, redis.ErrLocked) {
//		return nil // another replica is generating
//	}
//	defer unlock(ctx)
//
// Locks are not re-entrant and do not wait. A lease expires after its TTL,
// so a crashed holder never blocks generation for longer than that. Releasing
// is token-checked: an expired lease taken over by another process is left
// alone.
//
// # Error Handling
//
//   - [ErrEmptyConnectionURL] - Empty connection URL provided
//   - [ErrFailedToParseURL] - Invalid connection URL format or scheme
//   - [ErrConnectionFailed] - Connection failed after all retry attempts
//   - [ErrLocked] - The lease is held by someone else
//   - [ErrLockFailed], [ErrUnlockFailed] - Redis command failed
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package redis
