package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// New builds a logger writing to stdout according to cfg.
// When cfg.SentryDSN is set, records are also forwarded to Sentry.
// A failed Sentry init falls back to stdout only and is reported there.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	return NewWithWriter(os.Stdout, cfg, extractors...)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := ParseLevel(cfg.Level)
	out := newOutputHandler(w, cfg.Format, level)

	if cfg.SentryDSN == "" {
		return slog.New(NewLogHandlerDecorator(out, extractors...)), nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(out).Error("sentry init failed, logging to output only", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(out, extractors...)), nil
	}

	sentryLevel, _ := ParseLevel(cfg.SentryLevel)
	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sentryLevel >= slog.LevelError {
		logLevels = []slog.Level{slog.LevelError}
	}

	sh := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(out, sh), extractors...)), nil
}

// NewNope returns a logger that discards everything.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newOutputHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
