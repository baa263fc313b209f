package source

import (
	"context"
	"time"
)

// Entry is a single record that can be listed in a sitemap.
type Entry interface {
	// SitemapURL returns the record location: an absolute URL or a site path.
	SitemapURL() string

	// SitemapLastModified returns when the record last changed.
	// The zero time means unknown.
	SitemapLastModified() time.Time
}

// Source enumerates sitemap entries for one entity type.
type Source interface {
	// Name identifies the source. It is used as the sitemap file name.
	Name() string

	// Chunk calls fn with consecutive batches of at most size entries,
	// in a stable order, until the source is exhausted or fn returns an error.
	Chunk(ctx context.Context, size int, fn func([]Entry) error) error
}

// Page is a plain Entry value.
type Page struct {
	UpdatedAt time.Time
	URL       string
}

func (p Page) SitemapURL() string             { return p.URL }
func (p Page) SitemapLastModified() time.Time { return p.UpdatedAt }

// Slice is an in-memory Source.
type Slice struct {
	name    string
	entries []Entry
}

// NewSlice creates a Source over a fixed list of entries.
func NewSlice(name string, entries ...Entry) *Slice {
	return &Slice{name: name, entries: entries}
}

// NewPages creates a Source over a fixed list of paths without modification dates.
func NewPages(name string, paths ...string) *Slice {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, Page{URL: p})
	}
	return NewSlice(name, entries...)
}

func (s *Slice) Name() string { return s.name }

func (s *Slice) Chunk(ctx context.Context, size int, fn func([]Entry) error) error {
	if size <= 0 {
		return ErrInvalidBatchSize
	}
	for start := 0; start < len(s.entries); start += size {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+size, len(s.entries))
		if err := fn(s.entries[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// Func adapts a function to the Source interface.
type Func struct {
	fn   func(ctx context.Context, size int, fn func([]Entry) error) error
	name string
}

// NewFunc creates a Source named name that delegates Chunk to fn.
func NewFunc(name string, fn func(ctx context.Context, size int, fn func([]Entry) error) error) *Func {
	return &Func{name: name, fn: fn}
}

func (f *Func) Name() string { return f.name }

func (f *Func) Chunk(ctx context.Context, size int, fn func([]Entry) error) error {
	return f.fn(ctx, size, fn)
}

var (
	_ Source = (*Slice)(nil)
	_ Source = (*Func)(nil)
)
