package main

import (
	"fmt"

	"github.com/dmitrymomot/sitemap"
	"github.com/dmitrymomot/sitemap/pkg/logger"
	"github.com/dmitrymomot/sitemap/pkg/storage"
)

// Storage drivers.
const (
	driverDisk = "disk"
	driverS3   = "s3"
)

// appConfig is the sitemapgen configuration file layout.
// Database settings come from DATABASE_* environment variables only.
type appConfig struct {
	Sitemap sitemap.Config `yaml:"sitemap"`
	Logger  logger.Config  `yaml:"logger"`
	Storage storageConfig  `yaml:"storage"`

	// RedisURL enables the cross-process generation lock.
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`

	// Queries are PostgreSQL-backed sources, one per entity type.
	Queries []queryConfig `yaml:"queries"`

	// Pages are static paths published under the "Page" source.
	Pages []string `yaml:"pages" env:"SITEMAP_PAGES" envSeparator:","`
}

type storageConfig struct {
	Driver string         `yaml:"driver" env:"STORAGE_DRIVER"`
	S3     storage.Config `yaml:"s3"`
}

type queryConfig struct {
	Name  string `yaml:"name"`
	Query string `yaml:"query"`
}

func loadAppConfig(path string) (appConfig, error) {
	cfg := appConfig{Sitemap: sitemap.DefaultConfig()}
	if err := sitemap.LoadFile(path, &cfg); err != nil {
		return appConfig{}, err
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = driverDisk
	}
	switch cfg.Storage.Driver {
	case driverDisk, driverS3:
	default:
		return appConfig{}, fmt.Errorf("%w: unknown storage driver %q", sitemap.ErrInvalidConfig, cfg.Storage.Driver)
	}
	for i, q := range cfg.Queries {
		if q.Name == "" || q.Query == "" {
			return appConfig{}, fmt.Errorf("%w: queries[%d] needs both name and query", sitemap.ErrInvalidConfig, i)
		}
	}
	return cfg, nil
}
