package internal

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Source error policies.
const (
	OnSourceErrorFail = "fail"
	OnSourceErrorSkip = "skip"
)

// Default configuration values.
const (
	DefaultChunkSize    = 100
	DefaultMaxTagsCount = 10000
	DefaultPublicDir    = "public"
	DefaultDirectory    = "sitemap_files"
	DefaultIndexName    = "sitemap.xml"
	DefaultCustomGroup  = "custom"

	// MaxURLsPerSitemap is the sitemaps.org limit of URLs in one file.
	MaxURLsPerSitemap = 50000
)

// Config holds generator settings. It is read once by New and never modified.
type Config struct {
	// BaseURL is the absolute site URL every location is resolved against (required).
	BaseURL string `yaml:"base_url" env:"SITEMAP_BASE_URL"`

	// PublicDir is the root of the default disk storage.
	// Ignored when a storage backend is supplied.
	PublicDir string `yaml:"public_dir" env:"SITEMAP_PUBLIC_DIR"`

	// Directory holds the per-group sitemap files, relative to the storage root.
	Directory string `yaml:"directory" env:"SITEMAP_DIRECTORY"`

	// IndexName is the storage key of the sitemap index.
	IndexName string `yaml:"index_name" env:"SITEMAP_INDEX_NAME"`

	// CustomGroup names the group holding items added with Collection.Attach.
	CustomGroup string `yaml:"custom_group" env:"SITEMAP_CUSTOM_GROUP"`

	// UseLastMod emits a lastmod element for every URL.
	// DefaultConfig and LoadConfig turn it on; a Config built from its zero
	// value leaves it off and renders no lastmod at all.
	UseLastMod bool `yaml:"use_lastmod" env:"SITEMAP_USE_LASTMOD"`

	// LastModFormat is the time layout used for lastmod values taken from
	// sources and from the clock.
	LastModFormat string `yaml:"lastmod_format" env:"SITEMAP_LASTMOD_FORMAT"`

	// ChunkSize is the number of records fetched from a source per batch.
	ChunkSize int `yaml:"chunk_size" env:"SITEMAP_CHUNK_SIZE"`

	// MaxTagsCount caps the number of URLs written to a single sitemap file.
	MaxTagsCount int `yaml:"max_tags_count" env:"SITEMAP_MAX_TAGS_COUNT"`

	// Localize prefixes every location with the default locale and adds
	// alternate links for all locales.
	Localize bool `yaml:"localize" env:"SITEMAP_LOCALIZE"`

	// DefaultLocale is required when Localize is set.
	DefaultLocale string `yaml:"default_locale" env:"SITEMAP_DEFAULT_LOCALE"`

	// Locales lists the available locales.
	Locales []string `yaml:"locales" env:"SITEMAP_LOCALES" envSeparator:","`

	// Sources selects and orders registered sources by name.
	// Empty means all registered sources in registration order.
	Sources []string `yaml:"sources" env:"SITEMAP_SOURCES" envSeparator:","`

	// OnSourceError is "fail" to abort the run when a source fails,
	// or "skip" to log the failure and drop that source.
	OnSourceError string `yaml:"on_source_error" env:"SITEMAP_ON_SOURCE_ERROR"`
}

// DefaultConfig returns a Config with every default applied and lastmod enabled.
func DefaultConfig() Config {
	cfg := Config{UseLastMod: true}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.PublicDir == "" {
		c.PublicDir = DefaultPublicDir
	}
	if c.Directory == "" {
		c.Directory = DefaultDirectory
	}
	if c.IndexName == "" {
		c.IndexName = DefaultIndexName
	}
	if c.CustomGroup == "" {
		c.CustomGroup = DefaultCustomGroup
	}
	if c.LastModFormat == "" {
		c.LastModFormat = time.RFC3339
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.MaxTagsCount == 0 {
		c.MaxTagsCount = DefaultMaxTagsCount
	}
	if c.OnSourceError == "" {
		c.OnSourceError = OnSourceErrorFail
	}
	c.Directory = strings.Trim(c.Directory, "/")
	c.IndexName = strings.TrimLeft(c.IndexName, "/")
}

func (c *Config) validate() error {
	var errs []error

	if strings.TrimSpace(c.BaseURL) == "" {
		errs = append(errs, errors.New("base_url is required"))
	}
	if c.ChunkSize < 0 {
		errs = append(errs, fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize))
	}
	if c.MaxTagsCount < 0 || c.MaxTagsCount > MaxURLsPerSitemap {
		errs = append(errs, fmt.Errorf("max_tags_count must be between 1 and %d, got %d", MaxURLsPerSitemap, c.MaxTagsCount))
	}
	if !validKey(c.Directory) {
		errs = append(errs, fmt.Errorf("directory %q is not a valid relative path", c.Directory))
	}
	if !validKey(c.IndexName) {
		errs = append(errs, fmt.Errorf("index_name %q is not a valid relative path", c.IndexName))
	}
	if strings.HasPrefix(c.IndexName, c.Directory+"/") {
		errs = append(errs, fmt.Errorf("index_name %q must not be inside directory %q", c.IndexName, c.Directory))
	}
	if strings.ContainsAny(c.CustomGroup, `/\`) {
		errs = append(errs, fmt.Errorf("custom_group %q must not contain path separators", c.CustomGroup))
	}
	switch c.OnSourceError {
	case OnSourceErrorFail, OnSourceErrorSkip:
	default:
		errs = append(errs, fmt.Errorf("on_source_error must be %q or %q, got %q", OnSourceErrorFail, OnSourceErrorSkip, c.OnSourceError))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// validKey reports whether k is a non-root relative path without ".." segments.
func validKey(k string) bool {
	if k == "" || k == "." {
		return false
	}
	for seg := range strings.SplitSeq(k, "/") {
		if seg == ".." {
			return false
		}
	}
	return path.Clean(k) != "."
}

// LoadConfig reads a YAML file into DefaultConfig and then applies
// environment variable overrides. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFile decodes the YAML file at path into dst, then overlays
// environment variables declared with env tags. Keys absent from both keep
// the values already in dst.
func LoadFile(path string, dst any) error {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if err := env.Parse(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
