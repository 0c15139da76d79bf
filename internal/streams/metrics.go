package streams

import (
	"opsmeter/internal/shared/metrics"
)

var (
	streamSample              = "sample"
	metricSampleProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "sample_published_total",
		},
		[]string{"stream_id"},
	)

	metricSampleConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "sample_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricFlushTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "flush_total",
		},
		[]string{"partition_id", metrics.FieldErrorCode},
	)
)
