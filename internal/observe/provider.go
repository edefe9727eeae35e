package observe

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Provider is the client's metric pipeline. A manual reader holds the
// totals until [Provider.Flush] writes them to the log.
type Provider struct {
	// Metrics records into this provider.
	Metrics *Metrics

	mp     *sdkmetric.MeterProvider
	reader *sdkmetric.ManualReader
}

// Point is one collected data point. Counters set Value; histograms set
// Count and the Value sum.
type Point struct {
	Name       string
	Attributes attribute.Set
	Value      float64
	Count      uint64
}

// InitProvider builds the SDK meter provider, registers it as the global
// provider and creates the client instruments on it.
func InitProvider() (*Provider, error) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics(mp)
	if err != nil {
		_ = mp.Shutdown(context.Background())
		return nil, fmt.Errorf("create metrics: %w", err)
	}

	return &Provider{Metrics: metrics, mp: mp, reader: reader}, nil
}

// Collect returns the current totals of every instrument that recorded
// something.
func (p *Provider) Collect(ctx context.Context) ([]Point, error) {
	var rm metricdata.ResourceMetrics
	if err := p.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	var points []Point
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					points = append(points, Point{Name: m.Name, Attributes: dp.Attributes, Value: float64(dp.Value)})
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					points = append(points, Point{Name: m.Name, Attributes: dp.Attributes, Value: dp.Sum, Count: dp.Count})
				}
			}
		}
	}
	return points, nil
}

// Flush writes one debug record per data point to logger.
func (p *Provider) Flush(ctx context.Context, logger *slog.Logger) error {
	points, err := p.Collect(ctx)
	if err != nil {
		return err
	}

	for _, point := range points {
		attrs := []slog.Attr{
			slog.String("name", point.Name),
			slog.String("attributes", point.Attributes.Encoded(attribute.DefaultEncoder())),
			slog.Float64("value", point.Value),
		}
		if point.Count > 0 {
			attrs = append(attrs, slog.Uint64("count", point.Count))
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "metric", attrs...)
	}
	return nil
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}
