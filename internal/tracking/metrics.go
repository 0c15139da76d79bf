package tracking

import (
	"opsmeter/internal/shared/metrics"
)

var (
	// metricMeterRate exposes the last published rate (events/second) of every rate meter.
	metricMeterRate = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTracking,
			Name:      "meter_rate",
		},
		[]string{metrics.FieldMeter},
	)

	// metricMeterAggregate exposes min, avg and max of the last closed batch, labelled by stat.
	metricMeterAggregate = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTracking,
			Name:      "meter_aggregate",
		},
		[]string{metrics.FieldMeter, metrics.FieldStat},
	)

	metricMeterPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTracking,
			Name:      "meter_published_total",
		},
		[]string{metrics.FieldMeter, metrics.FieldErrorCode},
	)
)
