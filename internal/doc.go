// Package internal implements the sitemap generator.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/sitemap" instead, which re-exports the public API.
//
// A run has three phases:
//
//   - Collect reads every selected source in batches of Config.ChunkSize and
//     splits each source's items into groups of at most Config.MaxTagsCount.
//     Groups are named after the source: Post, Post_1, Post_2.
//   - Render clears Config.Directory and writes one urlset document per group
//     as <Directory>/<group>.xml. With no groups nothing is cleared.
//   - The index lists the files in Config.Directory and is stored under
//     Config.IndexName; Render and Generate return its stored content.
//
// lastmod values carry forward: an item without a date gets the date of the
// closest preceding dated item in the same file, or the render time.
//
// Generate runs all phases. Concurrent Generate calls share one run, and a
// Locker keeps separate processes from writing the same output at once.
package internal
