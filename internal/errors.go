package internal

import "errors"

var (
	ErrInvalidConfig   = errors.New("sitemap: invalid configuration")
	ErrUnknownSource   = errors.New("sitemap: unknown source")
	ErrDuplicateSource = errors.New("sitemap: duplicate source name")
	ErrSourceFailed    = errors.New("sitemap: source enumeration failed")
	ErrNilCollection   = errors.New("sitemap: collection is nil")
	ErrLockFailed      = errors.New("sitemap: failed to acquire generation lock")
	ErrWriteFailed     = errors.New("sitemap: failed to write sitemap file")
	ErrIndexFailed     = errors.New("sitemap: failed to build sitemap index")
)
