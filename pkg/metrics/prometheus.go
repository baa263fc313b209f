package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitemap"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	runDuration  prom.Histogram
	runOutcome   *prom.CounterVec
	items        *prom.CounterVec
	sourceErrors *prom.CounterVec
	filesWritten prom.Counter
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg uses a fresh private registry.
func NewPrometheusRecorder(reg prom.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Duration of complete sitemap generation runs",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "generation_runs_total",
			Help:      "Generation runs by outcome",
		}, []string{"outcome"}),
		items: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "items_collected_total",
			Help:      "Sitemap items collected by source",
		}, []string{"source"}),
		sourceErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Source enumeration failures by source",
		}, []string{"source"}),
		filesWritten: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "files_written_total",
			Help:      "Sitemap files written, index excluded",
		}),
	}

	for _, c := range []prom.Collector{pr.runDuration, pr.runOutcome, pr.items, pr.sourceErrors, pr.filesWritten} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return pr, nil
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome string) {
	p.runOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) AddItems(source string, n int) {
	p.items.WithLabelValues(source).Add(float64(n))
}

func (p *PrometheusRecorder) IncSourceError(source string) {
	p.sourceErrors.WithLabelValues(source).Inc()
}

func (p *PrometheusRecorder) IncFilesWritten(n int) {
	p.filesWritten.Add(float64(n))
}

var _ Recorder = (*PrometheusRecorder)(nil)
