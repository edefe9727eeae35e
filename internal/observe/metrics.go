// Package observe holds the client's OpenTelemetry metric instruments and
// the SDK provider they record into.
//
// Tests should use [NewMetrics] with their own [metric.MeterProvider] to
// avoid cross-test pollution.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/bnema/digital-prison-cli"

// Metrics holds the metric instruments for the client. All fields are safe
// for concurrent use.
type Metrics struct {
	// RemoteRequests counts calls to the game server. Attributes:
	//   attribute.String("op", ...), attribute.String("status", ...)
	RemoteRequests metric.Int64Counter

	// RemoteDuration tracks game server round-trip latency by op.
	RemoteDuration metric.Float64Histogram

	// RemoteErrors counts failed calls by op and error kind.
	RemoteErrors metric.Int64Counter

	// LogEntries counts entries applied to the event log by entry type.
	LogEntries metric.Int64Counter

	// ThemeChanges counts sector theme switches.
	ThemeChanges metric.Int64Counter
}

// Server round trips include narrative generation, which can take tens of
// seconds.
var latencyBuckets = []float64{
	0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60,
}

// NewMetrics creates a fully initialised [Metrics] using the given
// [metric.MeterProvider].
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.RemoteRequests, err = m.Int64Counter("prison.remote.requests",
		metric.WithDescription("Total game server requests by op and status."),
	); err != nil {
		return nil, err
	}
	if met.RemoteDuration, err = m.Float64Histogram("prison.remote.duration",
		metric.WithDescription("Latency of game server requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.RemoteErrors, err = m.Int64Counter("prison.remote.errors",
		metric.WithDescription("Total failed game server requests by op and kind."),
	); err != nil {
		return nil, err
	}
	if met.LogEntries, err = m.Int64Counter("prison.log.entries",
		metric.WithDescription("Total log entries applied by type."),
	); err != nil {
		return nil, err
	}
	if met.ThemeChanges, err = m.Int64Counter("prison.audio.theme_changes",
		metric.WithDescription("Total sector theme switches."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordRemoteRequest records one finished server call. An empty errKind
// means the call succeeded. A nil receiver records nothing.
func (m *Metrics) RecordRemoteRequest(ctx context.Context, op string, elapsed time.Duration, errKind string) {
	if m == nil {
		return
	}

	status := "ok"
	if errKind != "" {
		status = "error"
		m.RemoteErrors.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("op", op),
				attribute.String("kind", errKind),
			),
		)
	}

	m.RemoteRequests.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("status", status),
		),
	)
	m.RemoteDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("op", op)),
	)
}

func (m *Metrics) RecordLogEntry(ctx context.Context, entryType string) {
	if m == nil {
		return
	}
	m.LogEntries.Add(ctx, 1, metric.WithAttributes(attribute.String("type", entryType)))
}

func (m *Metrics) RecordThemeChange(ctx context.Context, theme string) {
	if m == nil {
		return
	}
	m.ThemeChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("theme", theme)))
}
