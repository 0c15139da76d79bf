package streams

import (
	"context"

	"opsmeter/internal/models"
)

// SampleProducer publishes samples to a partitioned queue keyed by meter name.
//
// Every sample of a meter lands on the same partition, and each partition is drained by
// exactly one worker that owns the meters routed to it. Meters therefore always have a
// single writer and need no locking, while distinct meters are updated in parallel.
//
//go:generate mockgen -source=sample_producer.go -destination=./mocks/sample_producer_mock.go -package=mocks
type SampleProducer interface {
	Produce(ctx context.Context, samples []models.Sample) error
}

type sampleProducer struct {
	queue *PartitionedQueue[models.Sample]
}

func NewSampleProducer(queue *PartitionedQueue[models.Sample]) SampleProducer {
	return &sampleProducer{
		queue: queue,
	}
}

func (producer *sampleProducer) Produce(ctx context.Context, samples []models.Sample) error {
	for _, sample := range samples {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		producer.queue.Publish(sample.Meter, sample)
		metricSampleProducedTotal.WithLabelValues(streamSample).Inc()
	}
	return nil
}
