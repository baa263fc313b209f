package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sitemap"
	"github.com/dmitrymomot/sitemap/pkg/db"
	"github.com/dmitrymomot/sitemap/pkg/health"
	"github.com/dmitrymomot/sitemap/pkg/redis"
	"github.com/dmitrymomot/sitemap/pkg/source"
	"github.com/dmitrymomot/sitemap/pkg/storage"
)

// deps are the external resources a command works with.
type deps struct {
	storage storage.Storage
	sources []source.Source
	pool    *pgxpool.Pool
	redis   goredis.UniversalClient
}

func openDeps(ctx context.Context, cfg *appConfig, log *slog.Logger) (*deps, error) {
	d := &deps{}

	var err error
	if cfg.Storage.Driver == driverS3 {
		d.storage, err = storage.New(cfg.Storage.S3)
	} else {
		d.storage, err = storage.NewDisk(cfg.Sitemap.PublicDir)
	}
	if err != nil {
		return nil, err
	}

	if len(cfg.Pages) > 0 {
		d.sources = append(d.sources, source.NewPages("Page", cfg.Pages...))
	}

	if len(cfg.Queries) > 0 {
		var dbCfg db.Config
		if err := env.Parse(&dbCfg); err != nil {
			return nil, errors.Join(sitemap.ErrInvalidConfig, err)
		}
		d.pool, err = db.Connect(ctx, dbCfg)
		if err != nil {
			return nil, err
		}
		for _, q := range cfg.Queries {
			src, err := db.NewSource(d.pool, q.Name, q.Query)
			if err != nil {
				d.close()
				return nil, err
			}
			d.sources = append(d.sources, src)
		}
		log.DebugContext(ctx, "database sources ready", slog.Int("count", len(cfg.Queries)))
	}

	if cfg.RedisURL != "" {
		d.redis, err = redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			d.close()
			return nil, err
		}
	}

	return d, nil
}

// checks returns a probe for every configured dependency.
func (d *deps) checks(directory string) health.Checks {
	checks := health.Checks{
		"storage": func(ctx context.Context) error {
			_, err := d.storage.List(ctx, directory)
			return err
		},
	}
	if d.pool != nil {
		checks["postgres"] = d.pool.Ping
	}
	if d.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return d.redis.Ping(ctx).Err()
		}
	}
	return checks
}

func (d *deps) close() {
	if d.pool != nil {
		d.pool.Close()
	}
	if d.redis != nil {
		_ = d.redis.Close()
	}
}
