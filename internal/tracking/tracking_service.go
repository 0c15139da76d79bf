package tracking

import (
	"context"
	"errors"
	"time"

	"opsmeter/internal/models"
	"opsmeter/internal/shared/loggers"
	"opsmeter/internal/shared/metrics"
	"opsmeter/internal/shared/svcerrors"
	"opsmeter/internal/stores"
)

//go:generate mockgen -source=tracking_service.go -destination=./mocks/tracking_service_mock.go -package=mocks
type TrackingService interface {
	// Record feeds sample to the lane and publishes the meter if its batch closed.
	Record(ctx context.Context, lane *MeterLane, sample *models.Sample) *svcerrors.ServiceError
	// Flush updates the lane's rate meters at now and publishes those whose window closed.
	Flush(ctx context.Context, lane *MeterLane, now time.Time) *svcerrors.ServiceError
}

type trackingService struct {
	snapshotStore stores.SnapshotStore
	now           func() time.Time
}

func NewTrackingService(snapshotStore stores.SnapshotStore) TrackingService {
	return &trackingService{snapshotStore: snapshotStore, now: time.Now}
}

func (s *trackingService) Record(ctx context.Context, lane *MeterLane, sample *models.Sample) *svcerrors.ServiceError {
	publication, err := lane.Observe(*sample, s.now())
	if err != nil {
		if errors.Is(err, ErrUnknownMeter) {
			return errUnknownMeter(err)
		}
		return svcerrors.NewInternalErrorUndefined(err)
	}
	if publication == nil {
		return nil
	}
	return s.publish(ctx, publication)
}

func (s *trackingService) Flush(ctx context.Context, lane *MeterLane, now time.Time) *svcerrors.ServiceError {
	var firstErr *svcerrors.ServiceError
	publications := lane.Flush(now)
	for i := range publications {
		if svcErr := s.publish(ctx, &publications[i]); svcErr != nil && firstErr == nil {
			firstErr = svcErr
		}
	}
	return firstErr
}

func (s *trackingService) publish(ctx context.Context, publication *Publication) *svcerrors.ServiceError {
	snapshot := publication.Snapshot
	if err := s.snapshotStore.Upsert(ctx, snapshot); err != nil {
		svcErr := errInternalSnapshotStoreFailed(err)
		metricMeterPublishedTotal.WithLabelValues(snapshot.Name, svcErr.Code).Inc()
		return svcErr
	}

	switch snapshot.Kind {
	case models.MeterRate:
		if snapshot.Rate != nil {
			metricMeterRate.WithLabelValues(snapshot.Name).Set(float64(*snapshot.Rate))
		}
	case models.MeterAggregate:
		if snapshot.Min != nil && snapshot.Avg != nil && snapshot.Max != nil {
			metricMeterAggregate.WithLabelValues(snapshot.Name, "min").Set(*snapshot.Min)
			metricMeterAggregate.WithLabelValues(snapshot.Name, "avg").Set(float64(*snapshot.Avg))
			metricMeterAggregate.WithLabelValues(snapshot.Name, "max").Set(*snapshot.Max)
		}
	}
	metricMeterPublishedTotal.WithLabelValues(snapshot.Name, metrics.ValueNoError).Inc()

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldMeter, snapshot.Name).
		Str(loggers.FieldMeterKind, string(snapshot.Kind)).
		Object(loggers.FieldReport, publication.Report).
		Msg("meter published")
	return nil
}
