package queries

import (
	"context"
	"errors"

	"opsmeter/internal/models"
	"opsmeter/internal/shared/loggers"
	"opsmeter/internal/stores"
)

//go:generate mockgen -source=meter_query_service.go -destination=./mocks/meter_query_service_mock.go -package=mocks
type MeterQueryService interface {
	// Get returns the latest snapshot of a configured meter.
	Get(ctx context.Context, name string) (*models.MeterSnapshot, error)
	// List returns the latest snapshot of every configured meter, ordered by name.
	List(ctx context.Context) ([]*models.MeterSnapshot, error)
}

type meterQueryService struct {
	catalog       *models.MeterCatalog
	snapshotStore stores.SnapshotStore
}

func NewMeterQueryService(catalog *models.MeterCatalog, snapshotStore stores.SnapshotStore) MeterQueryService {
	return &meterQueryService{
		catalog:       catalog,
		snapshotStore: snapshotStore,
	}
}

func (s *meterQueryService) Get(ctx context.Context, name string) (*models.MeterSnapshot, error) {
	def, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, errMeterNotFound(name)
	}

	snapshot, err := s.snapshotStore.Get(ctx, name)
	if errors.Is(err, stores.ErrSnapshotNotFound) {
		return models.NewPendingSnapshot(def), nil
	}
	if err != nil {
		return nil, errInternalSnapshotStoreFailed(err)
	}
	return snapshot, nil
}

func (s *meterQueryService) List(ctx context.Context) ([]*models.MeterSnapshot, error) {
	snapshots, err := s.snapshotStore.List(ctx)
	if err != nil {
		return nil, errInternalSnapshotStoreFailed(err)
	}

	byName := make(map[string]*models.MeterSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		byName[snapshot.Name] = snapshot
	}

	definitions := s.catalog.Definitions()
	result := make([]*models.MeterSnapshot, 0, len(definitions))
	for _, def := range definitions {
		if snapshot, ok := byName[def.Name]; ok {
			result = append(result, snapshot)
			continue
		}
		result = append(result, models.NewPendingSnapshot(def))
	}

	loggers.Ctx(ctx).Debug().Msgf("listed %d meters, %d reported", len(result), len(snapshots))
	return result, nil
}
