package sitemap

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/sitemap/internal"
	"github.com/dmitrymomot/sitemap/pkg/metrics"
	"github.com/dmitrymomot/sitemap/pkg/source"
	"github.com/dmitrymomot/sitemap/pkg/storage"
)

// Type aliases - public API
type (
	// Generator collects items from sources and publishes sitemap files.
	Generator = internal.Generator

	// Config holds generator settings.
	Config = internal.Config

	// Option configures a Generator.
	Option = internal.Option

	// Collection holds the items gathered for one run.
	Collection = internal.Collection

	// Item is a single sitemap URL with an optional lastmod value.
	Item = internal.Item

	// Group is a named run of items written to one sitemap file.
	Group = internal.Group

	// Locker serializes generation runs across processes.
	// *redis.Locker from pkg/redis implements it.
	Locker = internal.Locker
)

// Source error policies.
const (
	OnSourceErrorFail = internal.OnSourceErrorFail
	OnSourceErrorSkip = internal.OnSourceErrorSkip
)

// Errors
var (
	ErrInvalidConfig   = internal.ErrInvalidConfig
	ErrUnknownSource   = internal.ErrUnknownSource
	ErrDuplicateSource = internal.ErrDuplicateSource
	ErrSourceFailed    = internal.ErrSourceFailed
	ErrNilCollection   = internal.ErrNilCollection
	ErrLockFailed      = internal.ErrLockFailed
	ErrWriteFailed     = internal.ErrWriteFailed
	ErrIndexFailed     = internal.ErrIndexFailed
)

// New validates cfg and creates a Generator.
//
// Example:
//
//	gen, err := sitemap.New(cfg,
//	    sitemap.WithLogger(log),
//	    sitemap.WithSources(posts, pages),
//	)
//	if err != nil {
//	    return err
//	}
//	index, err := gen.Generate(ctx)
func New(cfg Config, opts ...Option) (*Generator, error) {
	return internal.New(cfg, opts...)
}

// DefaultConfig returns a Config with every default applied and lastmod enabled.
// BaseURL still has to be set.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// LoadConfig reads a YAML file on top of DefaultConfig and applies
// SITEMAP_* environment variable overrides. An empty path reads only the environment.
func LoadConfig(path string) (Config, error) {
	return internal.LoadConfig(path)
}

// LoadFile decodes a YAML file into dst and overlays environment variables
// declared with env tags. Use it for application configs embedding Config.
func LoadFile(path string, dst any) error {
	return internal.LoadFile(path, dst)
}

// WithLogger sets the logger used during generation.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithStorage sets where sitemap files are written.
// Defaults to disk storage rooted at Config.PublicDir.
func WithStorage(s storage.Storage) Option {
	return internal.WithStorage(s)
}

// WithSources registers the sources to collect from.
func WithSources(sources ...source.Source) Option {
	return internal.WithSources(sources...)
}

// WithClock overrides the time source used to seed lastmod values.
func WithClock(now func() time.Time) Option {
	return internal.WithClock(now)
}

// WithLocker guards rendering with a lock shared between processes.
func WithLocker(l Locker) Option {
	return internal.WithLocker(l)
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return internal.WithMetrics(r)
}

// WithCustomItems attaches items to every collection.
// Root-relative paths are resolved against Config.BaseURL.
func WithCustomItems(items ...Item) Option {
	return internal.WithCustomItems(items...)
}
