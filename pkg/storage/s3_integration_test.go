//go:build integration

package storage_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitemap/pkg/storage"
)

// Integration test configuration for an S3-compatible server.
// Start the test infrastructure with: docker-compose up -d
const (
	testEndpoint  = "http://localhost:9000"
	testAccessKey = "admin"
	testSecretKey = "admin123"
	testBucket    = "sitemaps"
	testRegion    = "us-east-1"
)

func newTestStorage(t *testing.T) *storage.S3Storage {
	t.Helper()

	s, err := storage.New(storage.Config{
		Endpoint:  testEndpoint,
		AccessKey: testAccessKey,
		SecretKey: testSecretKey,
		Bucket:    testBucket,
		Region:    testRegion,
		Prefix:    fmt.Sprintf("it-%d", time.Now().UnixNano()),
		PathStyle: true,
	})
	require.NoError(t, err, "failed to create storage client")

	return s
}

func TestS3Integration_Lifecycle(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "sitemap_files/Post.xml", []byte("<urlset/>")))
	require.NoError(t, s.Put(ctx, "sitemap_files/Page.xml", []byte("<urlset/>")))
	require.NoError(t, s.Put(ctx, "sitemap.xml", []byte("<sitemapindex/>"),
		storage.WithCacheControl("public, max-age=3600"),
	))

	data, err := s.Get(ctx, "sitemap.xml")
	require.NoError(t, err)
	require.Equal(t, "<sitemapindex/>", string(data))

	names, err := s.List(ctx, "sitemap_files")
	require.NoError(t, err)
	require.Equal(t, []string{"Page.xml", "Post.xml"}, names)

	require.NoError(t, s.Clear(ctx, "sitemap_files"))

	names, err = s.List(ctx, "sitemap_files")
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = s.Get(ctx, "sitemap_files/Post.xml")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
