package array

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	GrowableStatsName          = "xboot/xseq"
	GrowableCapacityMetricName = "xseq.growable.capacity"
)

// growableStats is shared by a sequence and its clones, so the length
// counter sums the live elements of every sequence using the same name.
type growableStats struct {
	growCount metric.Int64Counter
	capacity  metric.Int64Histogram
	length    metric.Int64UpDownCounter
}

func (stats *growableStats) RecordGrowth(newCapacity int64) {
	if stats == nil {
		return
	}
	stats.growCount.Add(context.Background(), 1)
	stats.capacity.Record(context.Background(), newCapacity)
}

func (stats *growableStats) RecordLengthDelta(delta int64) {
	if stats == nil || delta == 0 {
		return
	}
	stats.length.Add(context.Background(), delta)
}

func newGrowableStats(name string, mp metric.MeterProvider) *growableStats {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(fmt.Sprintf("%s/%s", GrowableStatsName, name))
	return &growableStats{
		growCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xseq.growable.grow.count",
			metric.WithDescription("The number of capacity doublings."),
		)),
		capacity: lo.Must[metric.Int64Histogram](meter.Int64Histogram(
			GrowableCapacityMetricName,
			metric.WithDescription("The capacity right after a doubling. In slots."),
			metric.WithUnit("{slot}"),
		)),
		length: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"xseq.growable.length",
			metric.WithDescription("The number of live elements."),
		)),
	}
}
