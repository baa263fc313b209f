// Package db reads sitemap sources from PostgreSQL.
//
// It wraps [github.com/jackc/pgx/v5/pgxpool] with a retrying [Connect] and a
// query-backed [Source] that pages through a result set in bounded batches,
// so large tables never have to be loaded at once.
//
// # Configuration
//
// All connection settings are loaded from environment variables:
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (required)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 4)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 1)
//	DATABASE_HEALTHCHECK_PERIOD - Health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//
// # Sources
//
// A query must select url, updated_at and created_at, in that order, and end
// with a deterministic ORDER BY:
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	posts, err := db.NewSource(pool, "Post", `
//		SELECT '/blog/' || slug, updated_at, created_at
//		FROM posts
//		WHERE published
//		ORDER BY id`)
//
// Every page is read inside one read-only repeatable-read transaction
// ([WithSnapshot]), so concurrent writes cannot shift or duplicate rows
// between pages. The last-modified date is updated_at, falling back to
// created_at when it is NULL.
//
// # Error Handling
//
//   - [ErrFailedToParseDBConfig] - Invalid connection string format
//   - [ErrFailedToOpenDBConnection] - Connection failed after all retries
//   - [ErrEmptyName], [ErrEmptyQuery] - Invalid source definition
//   - [ErrQueryFailed] - A page query or scan failed
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package db
