package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/sitemap/pkg/locale"
	"github.com/dmitrymomot/sitemap/pkg/logger"
	"github.com/dmitrymomot/sitemap/pkg/metrics"
	"github.com/dmitrymomot/sitemap/pkg/source"
	"github.com/dmitrymomot/sitemap/pkg/storage"
)

// Locker serializes generation runs across processes.
// Lock returns a release function, or an error if the lock is held elsewhere.
type Locker interface {
	Lock(ctx context.Context, name string) (func(context.Context) error, error)
}

// Generator collects items from sources and publishes sitemap files
// and the sitemap index.
type Generator struct {
	cfg       Config
	localizer *locale.Localizer
	storage   storage.Storage
	sources   []source.Source
	custom    []Item
	logger    *slog.Logger
	metrics   metrics.Recorder
	locker    Locker
	now       func() time.Time
	runs      singleflight.Group
}

// New validates cfg and builds a Generator.
func New(cfg Config, opts ...Option) (*Generator, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	l, err := locale.New(cfg.BaseURL,
		locale.WithDefault(cfg.DefaultLocale),
		locale.WithLocales(cfg.Locales...),
		locale.WithLocalization(cfg.Localize),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	g := &Generator{
		cfg:       cfg,
		localizer: l,
		logger:    logger.NewNope(),
		metrics:   metrics.NoopRecorder{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.checkSources(); err != nil {
		return nil, err
	}

	if g.storage == nil {
		disk, err := storage.NewDisk(cfg.PublicDir)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		g.storage = disk
	}

	return g, nil
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Localizer returns the URL localizer built from the configuration.
func (g *Generator) Localizer() *locale.Localizer {
	return g.localizer
}

// NewCollection returns an empty collection bound to this generator's
// base URL and limits. Use it to render hand-built item lists.
func (g *Generator) NewCollection() *Collection {
	return newCollection(g.localizer, g.cfg.CustomGroup, g.cfg.MaxTagsCount)
}

// Collect reads all selected sources and returns the resulting collection,
// including items passed with WithCustomItems.
func (g *Generator) Collect(ctx context.Context) (*Collection, error) {
	selected, err := g.selectSources()
	if err != nil {
		return nil, err
	}

	col := g.NewCollection()
	for _, src := range selected {
		items, err := collectSource(ctx, src, g.cfg.ChunkSize, g.cfg.LastModFormat)
		if err != nil {
			g.metrics.IncSourceError(src.Name())
			if ctx.Err() != nil {
				return nil, err
			}
			if g.cfg.OnSourceError == OnSourceErrorSkip {
				g.logger.WarnContext(ctx, "source skipped",
					slog.String("source", src.Name()),
					slog.String("error", err.Error()),
				)
				continue
			}
			return nil, err
		}

		groups := shard(src.Name(), items, g.cfg.MaxTagsCount)
		col.add(groups...)
		g.metrics.AddItems(src.Name(), len(items))
		g.logger.DebugContext(ctx, "source collected",
			slog.String("source", src.Name()),
			slog.Int("items", len(items)),
			slog.Int("groups", len(groups)),
		)
	}

	for _, it := range g.custom {
		col.Attach(it.URL, it.LastMod)
	}
	if len(g.custom) > 0 {
		g.metrics.AddItems(g.cfg.CustomGroup, len(g.custom))
	}

	return col, nil
}

// Render writes one sitemap file per group and rebuilds the index.
// The sitemap directory is cleared first, unless the collection has no groups,
// in which case existing files stay and the index lists them.
func (g *Generator) Render(ctx context.Context, col *Collection) ([]byte, error) {
	if col == nil {
		return nil, ErrNilCollection
	}
	release, err := g.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return g.render(ctx, col)
}

// Generate collects and renders in one run and returns the sitemap index.
// Concurrent calls on the same Generator share a single run. The shared run
// is not cancelled with any caller's context; a caller whose context ends
// returns early with its context error while the run goes on.
func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	runCtx := context.WithoutCancel(ctx)
	ch := g.runs.DoChan("generate", func() (any, error) {
		return g.run(runCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (g *Generator) run(ctx context.Context) ([]byte, error) {
	ctx = logger.WithRunID(ctx, uuid.NewString())
	start := time.Now()

	out, err := g.generate(ctx)
	g.metrics.ObserveRunDuration(time.Since(start))

	switch {
	case errors.Is(err, ErrLockFailed):
		g.metrics.IncRunOutcome(metrics.OutcomeLocked)
		g.logger.WarnContext(ctx, "sitemap generation skipped", slog.String("error", err.Error()))
		return nil, err
	case err != nil:
		g.metrics.IncRunOutcome(metrics.OutcomeFailed)
		g.logger.ErrorContext(ctx, "sitemap generation failed", slog.String("error", err.Error()))
		return nil, err
	}

	g.metrics.IncRunOutcome(metrics.OutcomeSuccess)
	g.logger.InfoContext(ctx, "sitemap generated",
		slog.String("index", g.cfg.IndexName),
		slog.Duration("duration", time.Since(start)),
	)
	return out, nil
}

func (g *Generator) generate(ctx context.Context) ([]byte, error) {
	release, err := g.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	col, err := g.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return g.render(ctx, col)
}

func (g *Generator) render(ctx context.Context, col *Collection) ([]byte, error) {
	groups := col.Groups()
	if err := checkGroupNames(groups); err != nil {
		return nil, err
	}
	if len(groups) > 0 {
		if err := g.storage.Clear(ctx, g.cfg.Directory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
	} else {
		g.logger.WarnContext(ctx, "no sitemap items collected, keeping existing files",
			slog.String("directory", g.cfg.Directory),
		)
	}

	r := renderer{
		localizer:  g.localizer,
		layout:     g.cfg.LastModFormat,
		useLastMod: g.cfg.UseLastMod,
	}
	now := g.now()

	for _, grp := range groups {
		data, err := r.render(grp.Items, now)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrWriteFailed, grp.Name, err)
		}
		key := g.cfg.Directory + "/" + grp.Name + ".xml"
		if err := g.storage.Put(ctx, key, data, storage.WithContentType(storage.DefaultContentType)); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrWriteFailed, grp.Name, err)
		}
		g.logger.DebugContext(ctx, "sitemap file written",
			slog.String("key", key),
			slog.Int("urls", len(grp.Items)),
		)
	}
	g.metrics.IncFilesWritten(len(groups))

	return g.buildIndex(ctx)
}

// lock acquires the cross-process lock when a Locker is configured.
// The returned release function logs instead of failing the run.
func (g *Generator) lock(ctx context.Context) (func(), error) {
	if g.locker == nil {
		return func() {}, nil
	}
	unlock, err := g.locker.Lock(ctx, g.cfg.IndexName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLockFailed, err)
	}
	return func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			g.logger.WarnContext(ctx, "failed to release generation lock", slog.String("error", err.Error()))
		}
	}, nil
}

func (g *Generator) checkSources() error {
	seen := make(map[string]struct{}, len(g.sources))
	for _, s := range g.sources {
		name := s.Name()
		if name == "" {
			return errors.Join(ErrInvalidConfig, source.ErrEmptyName)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: source name %q must not contain path separators", ErrInvalidConfig, name)
		}
		if _, ok := seen[name]; ok || name == g.cfg.CustomGroup {
			return fmt.Errorf("%w: %s", ErrDuplicateSource, name)
		}
		seen[name] = struct{}{}
	}
	_, err := g.selectSources()
	return err
}

// checkGroupNames rejects groups that would be written to the same file,
// e.g. the second shard of "Post" and a source named "Post_1".
func checkGroupNames(groups []Group) error {
	seen := make(map[string]struct{}, len(groups))
	for _, grp := range groups {
		if _, ok := seen[grp.Name]; ok {
			return fmt.Errorf("%w: sitemap file %q produced twice", ErrDuplicateSource, grp.Name)
		}
		seen[grp.Name] = struct{}{}
	}
	return nil
}

// selectSources returns the sources named in Config.Sources, in that order,
// or every registered source when the list is empty.
func (g *Generator) selectSources() ([]source.Source, error) {
	if len(g.cfg.Sources) == 0 {
		return g.sources, nil
	}
	byName := make(map[string]source.Source, len(g.sources))
	for _, s := range g.sources {
		byName[s.Name()] = s
	}
	out := make([]source.Source, 0, len(g.cfg.Sources))
	for _, name := range g.cfg.Sources {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
		}
		out = append(out, s)
	}
	return out, nil
}
