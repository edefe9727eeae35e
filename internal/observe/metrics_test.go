package observe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumWhere(t *testing.T, rm metricdata.ResourceMetrics, name string, attr attribute.KeyValue) int64 {
	t.Helper()
	met := findMetric(rm, name)
	require.NotNil(t, met, name)
	sum, ok := met.Data.(metricdata.Sum[int64])
	require.True(t, ok, "%s is not an int64 sum", name)

	var total int64
	for _, dp := range sum.DataPoints {
		if v, found := dp.Attributes.Value(attr.Key); found && v == attr.Value {
			total += dp.Value
		}
	}
	return total
}

func TestRecordRemoteRequestSuccess(t *testing.T) {
	t.Parallel()

	m, reader := newTestMetrics(t)
	m.RecordRemoteRequest(context.Background(), "init", 250*time.Millisecond, "")
	m.RecordRemoteRequest(context.Background(), "init", 1500*time.Millisecond, "")

	rm := collect(t, reader)
	assert.Equal(t, int64(2), sumWhere(t, rm, "prison.remote.requests", attribute.String("status", "ok")))
	assert.Nil(t, findMetric(rm, "prison.remote.errors"))

	met := findMetric(rm, "prison.remote.duration")
	require.NotNil(t, met)
	hist, ok := met.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
}

func TestRecordRemoteRequestFailureCountsErrorKind(t *testing.T) {
	t.Parallel()

	m, reader := newTestMetrics(t)
	m.RecordRemoteRequest(context.Background(), "action", time.Second, "timeout")

	rm := collect(t, reader)
	assert.Equal(t, int64(1), sumWhere(t, rm, "prison.remote.requests", attribute.String("status", "error")))
	assert.Equal(t, int64(1), sumWhere(t, rm, "prison.remote.errors", attribute.String("kind", "timeout")))
}

func TestRecordLogEntryAndThemeChange(t *testing.T) {
	t.Parallel()

	m, reader := newTestMetrics(t)
	ctx := context.Background()
	m.RecordLogEntry(ctx, "text")
	m.RecordLogEntry(ctx, "text")
	m.RecordLogEntry(ctx, "ui_update")
	m.RecordThemeChange(ctx, "sector-03")

	rm := collect(t, reader)
	assert.Equal(t, int64(2), sumWhere(t, rm, "prison.log.entries", attribute.String("type", "text")))
	assert.Equal(t, int64(1), sumWhere(t, rm, "prison.log.entries", attribute.String("type", "ui_update")))
	assert.Equal(t, int64(1), sumWhere(t, rm, "prison.audio.theme_changes", attribute.String("theme", "sector-03")))
}

func TestNilMetricsRecordsNothing(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRemoteRequest(context.Background(), "ping", time.Millisecond, "")
		m.RecordLogEntry(context.Background(), "text")
		m.RecordThemeChange(context.Background(), "x")
	})
}
