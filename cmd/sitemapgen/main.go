package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sitemap"
	"github.com/dmitrymomot/sitemap/pkg/health"
	"github.com/dmitrymomot/sitemap/pkg/logger"
	"github.com/dmitrymomot/sitemap/pkg/metrics"
	"github.com/dmitrymomot/sitemap/pkg/redis"
)

var version = "dev"

type cli struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitemap.yaml" type:"path"`
	EnvFile []string         `name:"env-file" help:"Dotenv files loaded before the configuration"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate   generateCmd `cmd:"" default:"1" help:"Collect all sources and publish sitemap files and the index"`
	Check      checkCmd    `cmd:"" help:"Verify storage, database and Redis are reachable"`
	ShowConfig showCmd     `cmd:"" name:"show-config" help:"Print the effective configuration with secrets redacted"`
}

type generateCmd struct {
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile after the run"`
	Stdout      bool   `help:"Print the sitemap index to stdout"`
}

type checkCmd struct {
	Timeout time.Duration `help:"Timeout for all checks" default:"5s"`
}

type showCmd struct{}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("sitemapgen"),
		kong.Description("Generate XML sitemaps and a sitemap index."),
		kong.Vars{"version": version},
	)

	if len(c.EnvFile) > 0 {
		if err := godotenv.Load(c.EnvFile...); err != nil {
			fmt.Fprintln(os.Stderr, "load env file:", err)
			os.Exit(1)
		}
	}

	cfg, err := loadAppConfig(c.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(&cfg)
	if err := kctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func (showCmd) Run(cfg *appConfig) error {
	out := *cfg
	out.Storage.S3.SecretKey = redact(out.Storage.S3.SecretKey)
	out.Logger.SentryDSN = redact(out.Logger.SentryDSN)
	out.RedisURL = redact(out.RedisURL)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}

func (g generateCmd) Run(ctx context.Context, cfg *appConfig) error {
	log, err := logger.New(cfg.Logger, logger.RunIDExtractor())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPrometheusRecorder(reg)
	if err != nil {
		return err
	}

	d, err := openDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer d.close()

	opts := []sitemap.Option{
		sitemap.WithLogger(log),
		sitemap.WithStorage(d.storage),
		sitemap.WithSources(d.sources...),
		sitemap.WithMetrics(rec),
	}
	if d.redis != nil {
		opts = append(opts, sitemap.WithLocker(redis.NewLocker(d.redis)))
	}

	gen, err := sitemap.New(cfg.Sitemap, opts...)
	if err != nil {
		return err
	}

	index, genErr := gen.Generate(ctx)

	if g.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(g.MetricsFile, reg); err != nil {
			log.WarnContext(ctx, "failed to write metrics", slog.String("error", err.Error()))
		}
	}
	if genErr != nil {
		return genErr
	}

	if g.Stdout {
		_, err = os.Stdout.Write(index)
	}
	return err
}

func (c checkCmd) Run(ctx context.Context, cfg *appConfig) error {
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}

	d, err := openDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer d.close()

	report, err := health.Run(ctx, d.checks(cfg.Sitemap.Directory),
		health.WithTimeout(c.Timeout),
		health.WithLogger(log),
	)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if encErr := enc.Encode(report); encErr != nil {
		return encErr
	}
	_ = enc.Close()
	return err
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}
