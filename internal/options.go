package internal

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/sitemap/pkg/metrics"
	"github.com/dmitrymomot/sitemap/pkg/source"
	"github.com/dmitrymomot/sitemap/pkg/storage"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Nil keeps the no-op default.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStorage sets where sitemap files are written.
// Defaults to disk storage rooted at Config.PublicDir.
func WithStorage(s storage.Storage) Option {
	return func(g *Generator) {
		if s != nil {
			g.storage = s
		}
	}
}

// WithSources registers sources. Names must be unique.
func WithSources(sources ...source.Source) Option {
	return func(g *Generator) {
		for _, s := range sources {
			if s != nil {
				g.sources = append(g.sources, s)
			}
		}
	}
}

// WithClock overrides the time source used to seed lastmod values.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLocker guards Render and Generate with a lock shared between processes.
func WithLocker(l Locker) Option {
	return func(g *Generator) {
		g.locker = l
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.metrics = r
		}
	}
}

// WithCustomItems attaches items to every collection built by Collect.
func WithCustomItems(items ...Item) Option {
	return func(g *Generator) {
		g.custom = append(g.custom, items...)
	}
}
