package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/xseq/lib/array"
)

// The capacity of a growable sequence only takes the values
// initial << k, so the default latency oriented buckets are useless.
const capacityBucketsMaxShift = 30

func capacityBuckets() []float64 {
	buckets := make([]float64, 0, capacityBucketsMaxShift)
	for shift := 1; shift <= capacityBucketsMaxShift; shift++ {
		buckets = append(buckets, float64(int64(1)<<shift))
	}
	return buckets
}

// sequenceViews applies to every meter provider built here.
func sequenceViews() metric.Option {
	return metric.WithView(metric.NewView(
		metric.Instrument{Name: array.GrowableCapacityMetricName},
		metric.Stream{Aggregation: metric.AggregationExplicitBucketHistogram{
			Boundaries: capacityBuckets(),
		}},
	))
}

// NewConsoleMetricsExporter serves for test/dev environment.
// It installs a global meter provider that periodically prints the
// sequence stats and returns the provider shutdown, which flushes.
func NewConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (func(ctx context.Context) error, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(
			exporter,
			metric.WithInterval(interval),
			metric.WithTimeout(timeout),
		)),
		sequenceViews(),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// NewPrometheusMetricsExporter serves for the product environment, the stats
// are fetched by the prometheus gatherer of the given registerer over HTTP.
func NewPrometheusMetricsExporter(opts ...prometheus.Option) (func(ctx context.Context) error, error) {
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(
		metric.WithReader(exporter),
		sequenceViews(),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
