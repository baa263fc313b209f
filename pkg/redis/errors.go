package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	ErrFailedToParseURL   = errors.New("redis: failed to parse connection URL")
	ErrConnectionFailed   = errors.New("redis: failed to establish connection")
	ErrLocked             = errors.New("redis: lock is held by another process")
	ErrLockFailed         = errors.New("redis: failed to acquire lock")
	ErrUnlockFailed       = errors.New("redis: failed to release lock")
)
