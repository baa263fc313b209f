// Package source defines the capability a data provider must expose to
// contribute URLs to a sitemap.
//
// Any entity type that should appear in the sitemap is wrapped by a [Source].
// The source enumerates its records in bounded batches, so a provider backed
// by a large table never has to materialize the whole dataset at once:
//
//	type Posts struct{ repo *repository.Queries }
//
//	func (p *Posts) Name() string { return "Post" }
//
//	func (p *Posts) Chunk(ctx context.Context, size int, fn func([]source.Entry) error) error {
//		for offset := 0; ; offset += size {
//			rows, err := p.repo.ListPublishedPosts(ctx, size, offset)
//			if err != nil {
//				return err
//			}
//			if len(rows) == 0 {
//				return nil
//			}
//			if err := fn(toEntries(rows)); err != nil {
//				return err
//			}
//		}
//	}
//
// Each record implements [Entry]. A zero time from SitemapLastModified means
// the record has no known modification date.
//
// [Slice] is an in-memory implementation useful for static pages and tests;
// [github.com/dmitrymomot/sitemap/pkg/db] provides a PostgreSQL-backed one.
package source
