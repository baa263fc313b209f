package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	t.Parallel()

	reg := prom.NewRegistry()
	pr, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	pr.ObserveRunDuration(150 * time.Millisecond)
	pr.IncRunOutcome(OutcomeSuccess)
	pr.AddItems("Post", 3)
	pr.AddItems("Post", 2)
	pr.IncSourceError("Page")
	pr.IncFilesWritten(4)

	require.InDelta(t, 5, testutil.ToFloat64(pr.items.WithLabelValues("Post")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.sourceErrors.WithLabelValues("Page")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.runOutcome.WithLabelValues(OutcomeSuccess)), 0)
	require.InDelta(t, 4, testutil.ToFloat64(pr.filesWritten), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 5)
}

func TestPrometheusRecorder_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prom.NewRegistry()
	_, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	_, err = NewPrometheusRecorder(reg)
	require.Error(t, err)
}

func TestNoopRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder = NoopRecorder{}
	require.NotPanics(t, func() {
		r.ObserveRunDuration(time.Second)
		r.IncRunOutcome(OutcomeFailed)
		r.AddItems("Post", 1)
		r.IncSourceError("Post")
		r.IncFilesWritten(1)
	})
}
