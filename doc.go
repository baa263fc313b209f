// Package sitemap generates XML sitemaps and a sitemap index from pluggable
// data sources.
//
// Items are collected from sources in batches, split into files of at most
// Config.MaxTagsCount URLs, rendered as sitemaps.org 0.9 urlset documents and
// listed in a sitemap index. Output goes to any
// [github.com/dmitrymomot/sitemap/pkg/storage.Storage]: the local public
// directory by default, or an S3-compatible bucket.
//
// # Quick Start
//
//	cfg := sitemap.DefaultConfig()
//	cfg.BaseURL = "https://example.com"
//
//	gen, err := sitemap.New(cfg,
//	    sitemap.WithSources(
//	        source.NewPages("Page", "/", "/about", "/pricing"),
//	    ),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	index, err := gen.Generate(ctx)
//
// This writes public/sitemap_files/Page.xml and public/sitemap.xml.
//
// # Sources
//
// A source implements [github.com/dmitrymomot/sitemap/pkg/source.Source].
// Each source yields its own files, named after the source: Post.xml, then
// Post_1.xml, Post_2.xml once Post exceeds Config.MaxTagsCount URLs.
// [github.com/dmitrymomot/sitemap/pkg/db.NewSource] reads entries from
// PostgreSQL:
//
//	posts, err := db.NewSource(pool, "Post",
//	    "SELECT '/blog/' || slug, updated_at, created_at FROM posts WHERE published ORDER BY id")
//
// By default a failing source aborts the run. Set Config.OnSourceError to
// "skip" to log the failure and publish the remaining sources.
//
// # Custom Items
//
// Paths that no source covers can be attached to the "custom" group, either
// with [WithCustomItems] or on a collection:
//
//	col, err := gen.Collect(ctx)
//	if err != nil {
//	    return err
//	}
//	col.Attach("/contact", "")
//	index, err := gen.Render(ctx, col)
//
// # Localization
//
// With Config.Localize set, every location is rewritten to the default locale
// and alternate xhtml:link elements are added for each of Config.Locales.
// A locale segment already present in a stored URL is replaced, so
// "/en/products/shoe" becomes "/fr/products/shoe" for the fr alternate.
//
// # lastmod
//
// When Config.UseLastMod is set, every URL gets a lastmod element. URLs
// without a date inherit the date of the closest preceding dated URL in the
// same file, or the render time for leading URLs.
//
// # Stale Files
//
// Render clears Config.Directory before writing. A run that collects no
// items leaves the directory alone and the index lists the files already there.
//
// # Concurrency
//
// Concurrent Generate calls on one Generator share a single run. Use
// [WithLocker] with a [github.com/dmitrymomot/sitemap/pkg/redis.Locker] when
// several processes may generate the same sitemap.
//
// Config.UseLastMod is on in [DefaultConfig]. A Config literal leaves it off,
// so no lastmod elements are written.
package sitemap
