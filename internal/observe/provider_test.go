package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := InitProvider()
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p
}

func flushRecords(t *testing.T, p *Provider, level slog.Level) []map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level}))
	require.NoError(t, p.Flush(context.Background(), logger))

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}
	return records
}

func findRecord(records []map[string]any, name string, attributes string) map[string]any {
	for _, record := range records {
		if record["name"] == name && record["attributes"] == attributes {
			return record
		}
	}
	return nil
}

func TestProviderFlushLogsRecordedTotals(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()
	p.Metrics.RecordRemoteRequest(ctx, "init", 250*time.Millisecond, "")
	p.Metrics.RecordLogEntry(ctx, "text")
	p.Metrics.RecordLogEntry(ctx, "text")

	records := flushRecords(t, p, slog.LevelDebug)

	entries := findRecord(records, "prison.log.entries", "type=text")
	require.NotNil(t, entries)
	assert.Equal(t, "metric", entries["msg"])
	assert.Equal(t, float64(2), entries["value"])

	requests := findRecord(records, "prison.remote.requests", "op=init,status=ok")
	require.NotNil(t, requests)
	assert.Equal(t, float64(1), requests["value"])

	duration := findRecord(records, "prison.remote.duration", "op=init")
	require.NotNil(t, duration)
	assert.Equal(t, float64(1), duration["count"])
	assert.InDelta(t, 0.25, duration["value"], 1e-9)
}

func TestProviderFlushIsSilentAboveDebug(t *testing.T) {
	p := newTestProvider(t)
	p.Metrics.RecordThemeChange(context.Background(), "Boot Cell")

	assert.Empty(t, flushRecords(t, p, slog.LevelInfo))
}

func TestProviderCollectAfterShutdownFails(t *testing.T) {
	p, err := InitProvider()
	require.NoError(t, err)
	require.NoError(t, p.Shutdown(context.Background()))

	_, err = p.Collect(context.Background())
	assert.Error(t, err)
}
