// Package logger builds log/slog loggers for the sitemap generator.
//
// Loggers write JSON (or text) to stdout and can optionally forward warnings
// and errors to Sentry. Attributes stored in the context, such as the
// identifier of the current generation run, are added to every record by
// [ContextExtractor] functions:
//
//	log, err := logger.New(logger.Config{Level: "debug"}, logger.RunIDExtractor())
//	if err != nil {
//		return err
//	}
//
//	ctx := logger.WithRunID(ctx, uuid.NewString())
//	log.InfoContext(ctx, "sitemap generated", slog.Int("groups", 3))
//	// {"level":"INFO","msg":"sitemap generated","groups":3,"run_id":"..."}
//
// Sentry is enabled by setting Config.SentryDSN. Errors become Sentry issues;
// warnings are stored as logs unless SentryLevel is "error". An empty DSN, or
// a DSN Sentry rejects, leaves only the stdout output active.
//
// Use [NewNope] where a logger is required but output is not wanted.
package logger
