package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/sitemap/pkg/source"
)

// Row is one sitemap record read from PostgreSQL.
// Queries must select exactly three columns in this order:
// url (text), updated_at (timestamptz, nullable), created_at (timestamptz, nullable).
type Row struct {
	URL       string
	UpdatedAt *time.Time
	CreatedAt *time.Time
}

func (r Row) SitemapURL() string { return r.URL }

// SitemapLastModified prefers updated_at and falls back to created_at.
func (r Row) SitemapLastModified() time.Time {
	switch {
	case r.UpdatedAt != nil:
		return *r.UpdatedAt
	case r.CreatedAt != nil:
		return *r.CreatedAt
	default:
		return time.Time{}
	}
}

// Source enumerates sitemap rows returned by a SQL query, page by page.
type Source struct {
	db    TxBeginner
	name  string
	query string
}

// NewSource creates a Source named name over query.
// The query must have a deterministic ORDER BY and no LIMIT/OFFSET;
// pagination is appended.
//
// Example:
//
//	posts, err := db.NewSource(pool, "Post", `
//		SELECT '/blog/' || slug, updated_at, created_at
//		FROM posts
//		WHERE published
//		ORDER BY id`)
func NewSource(db TxBeginner, name, query string) (*Source, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	query = strings.TrimRight(strings.TrimSpace(query), ";")
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return &Source{db: db, name: name, query: query}, nil
}

func (s *Source) Name() string { return s.name }

// Chunk reads the query result in pages of size rows within one snapshot.
func (s *Source) Chunk(ctx context.Context, size int, fn func([]source.Entry) error) error {
	if size <= 0 {
		return source.ErrInvalidBatchSize
	}

	paged := pagedQuery(s.query)

	return WithSnapshot(ctx, s.db, func(tx pgx.Tx) error {
		for offset := 0; ; offset += size {
			rows, err := tx.Query(ctx, paged, size, offset)
			if err != nil {
				return errors.Join(ErrQueryFailed, fmt.Errorf("source %s: %w", s.name, err))
			}
			records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Row])
			if err != nil {
				return errors.Join(ErrQueryFailed, fmt.Errorf("source %s: %w", s.name, err))
			}
			if len(records) == 0 {
				return nil
			}

			batch := make([]source.Entry, len(records))
			for i, r := range records {
				batch[i] = r
			}
			if err := fn(batch); err != nil {
				return err
			}

			if len(records) < size {
				return nil
			}
		}
	})
}

func pagedQuery(query string) string {
	return query + "\nLIMIT $1 OFFSET $2"
}

var _ source.Source = (*Source)(nil)
