// Package metrics exposes sitemap generation metrics.
//
// Components receive a [Recorder] and default to [NoopRecorder], so metrics
// collection never requires nil checks. To export to Prometheus, register a
// [PrometheusRecorder]:
//
//	rec, err := metrics.NewPrometheusRecorder(prometheus.DefaultRegisterer)
//	if err != nil {
//		log.Fatal(err)
//	}
//	gen, err := sitemap.New(cfg, sitemap.WithMetrics(rec))
//
// Exported series (namespace "sitemap"):
//
//	generation_duration_seconds  histogram
//	generation_runs_total        counter{outcome}
//	items_collected_total        counter{source}
//	source_errors_total          counter{source}
//	files_written_total          counter
package metrics
