package internal

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/sitemap/pkg/storage"
)

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	XMLNS    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc string `xml:"loc"`
}

// buildIndex lists the files currently stored in the sitemap directory,
// writes an index referencing each of them and returns the stored index.
func (g *Generator) buildIndex(ctx context.Context) ([]byte, error) {
	names, err := g.storage.List(ctx, g.cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexFailed, err)
	}

	doc := sitemapIndex{
		XMLNS:    SitemapNamespace,
		Sitemaps: make([]sitemapEntry, 0, len(names)),
	}
	for _, name := range names {
		doc.Sitemaps = append(doc.Sitemaps, sitemapEntry{
			Loc: g.localizer.Absolute(g.cfg.Directory + "/" + name),
		})
	}

	data, err := marshalDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexFailed, err)
	}
	if err := g.storage.Put(ctx, g.cfg.IndexName, data, storage.WithContentType(storage.DefaultContentType)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexFailed, err)
	}

	stored, err := g.storage.Get(ctx, g.cfg.IndexName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexFailed, err)
	}

	g.logger.DebugContext(ctx, "sitemap index written",
		slog.String("key", g.cfg.IndexName),
		slog.Int("sitemaps", len(names)),
	)
	return stored, nil
}
