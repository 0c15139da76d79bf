package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"opsmeter/internal/models"
	"opsmeter/internal/shared/loggers"
	"opsmeter/internal/shared/metrics"
	"opsmeter/internal/shared/svcerrors"
	"opsmeter/internal/shared/ulid"
	"opsmeter/internal/tracking"
)

//go:generate mockgen -source=sample_consumer.go -destination=./mocks/sample_consumer_mock.go -package=mocks
type SampleConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type sampleConsumer struct {
	queue           *PartitionedQueue[models.Sample]
	lanes           []*tracking.MeterLane
	trackingService tracking.TrackingService
	tickInterval    time.Duration

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

// NewSampleConsumer creates a consumer with one lane per queue partition.
func NewSampleConsumer(queue *PartitionedQueue[models.Sample], lanes []*tracking.MeterLane, trackingService tracking.TrackingService, tickInterval time.Duration, logger loggers.Logger) (SampleConsumer, error) {
	if len(lanes) != queue.PartitionCount() {
		return nil, fmt.Errorf("got %d lanes for %d partitions", len(lanes), queue.PartitionCount())
	}
	if tickInterval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %v", tickInterval)
	}
	return &sampleConsumer{
		queue:           queue,
		lanes:           lanes,
		trackingService: trackingService,
		tickInterval:    tickInterval,
		stopCh:          make(chan struct{}),
		logger:          logger,
	}, nil
}

// Start spawns 1 worker goroutine per partition.
// Each worker is the only writer of the meters in its lane.
func (consumer *sampleConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		lane := consumer.lanes[partitionIndex]
		partitionIndex := partitionIndex
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch, lane)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *sampleConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *sampleConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan models.Sample, lane *tracking.MeterLane) {
	partitionID := strconv.Itoa(partitionIndex)
	workerCtx := consumer.logger.With().
		Str(loggers.FieldPartitionId, partitionID).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	ticker := time.NewTicker(consumer.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case now := <-ticker.C:
			consumer.guard(workerCtx, func() string {
				svcErr := consumer.trackingService.Flush(workerCtx, lane, now)
				if svcErr != nil {
					return svcErr.Code
				}
				return metrics.ValueNoError
			}, func(code string) {
				metricFlushTotal.WithLabelValues(partitionID, code).Inc()
			})
		case sample, ok := <-ch:
			if !ok {
				return
			}
			consumer.guard(workerCtx, func() string {
				svcErr := consumer.trackingService.Record(workerCtx, lane, &sample)
				if svcErr != nil {
					return svcErr.Code
				}
				return metrics.ValueNoError
			}, func(code string) {
				metricSampleConsumedTotal.WithLabelValues(streamSample, code).Inc()
			})
		}
	}
}

// guard runs fn, recovering a panic so the worker keeps draining its partition, and reports the resulting error code.
func (consumer *sampleConsumer) guard(ctx context.Context, fn func() string, report func(code string)) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("consumer panic recovered: %v", r)

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			report(svcerrors.NewInternalErrorPanic(panicErr).Code)
		}
	}()

	code := fn()
	if code != metrics.ValueNoError {
		loggers.Ctx(ctx).Warn().
			Str(loggers.FieldErrorCode, code).
			Msg("meter update failed")
	}
	report(code)
}
