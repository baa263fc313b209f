package source_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitemap/pkg/source"
)

func TestSlice_Chunk(t *testing.T) {
	t.Parallel()

	t.Run("splits into bounded batches", func(t *testing.T) {
		t.Parallel()

		src := source.NewPages("Page", "/a", "/b", "/c", "/d", "/e")

		var sizes []int
		var urls []string
		err := src.Chunk(context.Background(), 2, func(batch []source.Entry) error {
			sizes = append(sizes, len(batch))
			for _, e := range batch {
				urls = append(urls, e.SitemapURL())
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []int{2, 2, 1}, sizes)
		require.Equal(t, []string{"/a", "/b", "/c", "/d", "/e"}, urls)
	})

	t.Run("empty source never calls fn", func(t *testing.T) {
		t.Parallel()

		called := false
		err := source.NewSlice("Empty").Chunk(context.Background(), 10, func([]source.Entry) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		require.False(t, called)
	})

	t.Run("rejects non-positive size", func(t *testing.T) {
		t.Parallel()

		err := source.NewPages("Page", "/a").Chunk(context.Background(), 0, func([]source.Entry) error { return nil })
		require.ErrorIs(t, err, source.ErrInvalidBatchSize)
	})

	t.Run("stops on callback error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		calls := 0
		err := source.NewPages("Page", "/a", "/b", "/c").Chunk(context.Background(), 1, func([]source.Entry) error {
			calls++
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, calls)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := source.NewPages("Page", "/a").Chunk(ctx, 1, func([]source.Entry) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPage(t *testing.T) {
	t.Parallel()

	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	p := source.Page{URL: "/about", UpdatedAt: ts}
	require.Equal(t, "/about", p.SitemapURL())
	require.Equal(t, ts, p.SitemapLastModified())
	require.True(t, source.Page{}.SitemapLastModified().IsZero())
}
