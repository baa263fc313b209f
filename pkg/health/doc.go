// Package health runs dependency checks before a sitemap run.
//
// Checks execute concurrently under a shared timeout:
//
//	report, err := health.Run(ctx, health.Checks{
//		"storage":  func(ctx context.Context) error { _, err := store.List(ctx, "sitemap_files"); return err },
//		"postgres": pool.Ping,
//	}, health.WithTimeout(3*time.Second))
//	if err != nil {
//		log.Error("preflight failed", "failed", report.Failed())
//	}
//
// The error wraps [ErrCheckFailed] when any check fails, and also
// [ErrCheckTimeout] when a check exceeded the deadline.
package health
