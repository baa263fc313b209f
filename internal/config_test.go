package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.True(t, cfg.UseLastMod)
	require.Equal(t, DefaultChunkSize, cfg.ChunkSize)
	require.Equal(t, DefaultMaxTagsCount, cfg.MaxTagsCount)
	require.Equal(t, "sitemap_files", cfg.Directory)
	require.Equal(t, "sitemap.xml", cfg.IndexName)
	require.Equal(t, "custom", cfg.CustomGroup)
	require.Equal(t, time.RFC3339, cfg.LastModFormat)
	require.Equal(t, OnSourceErrorFail, cfg.OnSourceError)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.BaseURL = "https://example.com"
	require.NoError(t, cfg.validate())

	cfg.BaseURL = ""
	cfg.OnSourceError = "ignore"
	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "base_url")
	require.Contains(t, err.Error(), "on_source_error")
}

func TestValidKey(t *testing.T) {
	t.Parallel()

	require.True(t, validKey("sitemap_files"))
	require.True(t, validKey("a/b"))
	require.False(t, validKey(""))
	require.False(t, validKey("."))
	require.False(t, validKey("../up"))
	require.False(t, validKey("a/../b"))
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sitemap.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeYAML(t, `
base_url: https://example.com
use_lastmod: false
chunk_size: 50
locales: [en, fr]
default_locale: en
localize: true
sources: [Post, Page]
`)

	t.Run("file values over defaults", func(t *testing.T) {
		cfg, err := LoadConfig(p)
		require.NoError(t, err)
		require.Equal(t, "https://example.com", cfg.BaseURL)
		require.False(t, cfg.UseLastMod)
		require.Equal(t, 50, cfg.ChunkSize)
		require.Equal(t, DefaultMaxTagsCount, cfg.MaxTagsCount)
		require.Equal(t, []string{"en", "fr"}, cfg.Locales)
		require.Equal(t, []string{"Post", "Page"}, cfg.Sources)
		require.True(t, cfg.Localize)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("SITEMAP_CHUNK_SIZE", "25")
		t.Setenv("SITEMAP_LOCALES", "en,de")
		t.Setenv("SITEMAP_ON_SOURCE_ERROR", "skip")

		cfg, err := LoadConfig(p)
		require.NoError(t, err)
		require.Equal(t, 25, cfg.ChunkSize)
		require.Equal(t, []string{"en", "de"}, cfg.Locales)
		require.Equal(t, OnSourceErrorSkip, cfg.OnSourceError)
		require.Equal(t, "https://example.com", cfg.BaseURL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeYAML(t, "chunk_size: [1"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("SITEMAP_MAX_TAGS_COUNT", "many")
		_, err := LoadConfig(p)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
