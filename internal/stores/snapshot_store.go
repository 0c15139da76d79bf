package stores

import (
	"context"
	"errors"
	"sort"
	"sync"

	"opsmeter/internal/models"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore keeps the latest published snapshot of every meter.
// It is the only state shared between tracking workers and readers; it stores copies, never meters.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	Upsert(ctx context.Context, snapshot *models.MeterSnapshot) error
	Get(ctx context.Context, name string) (*models.MeterSnapshot, error)
	List(ctx context.Context) ([]*models.MeterSnapshot, error)
}

type snapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]models.MeterSnapshot
}

func NewSnapshotStore() SnapshotStore {
	return &snapshotStore{snapshots: make(map[string]models.MeterSnapshot)}
}

func (s *snapshotStore) Upsert(ctx context.Context, snapshot *models.MeterSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snapshot == nil || snapshot.Name == "" {
		return errors.New("snapshot must have a meter name")
	}

	s.mu.Lock()
	s.snapshots[snapshot.Name] = copySnapshot(*snapshot)
	s.mu.Unlock()
	return nil
}

func (s *snapshotStore) Get(ctx context.Context, name string) (*models.MeterSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snapshot, ok := s.snapshots[name]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSnapshotNotFound
	}

	out := copySnapshot(snapshot)
	return &out, nil
}

// List returns all snapshots ordered by meter name.
func (s *snapshotStore) List(ctx context.Context) ([]*models.MeterSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	result := make([]*models.MeterSnapshot, 0, len(s.snapshots))
	for _, snapshot := range s.snapshots {
		out := copySnapshot(snapshot)
		result = append(result, &out)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// copySnapshot detaches the optional value pointers so callers cannot mutate stored state.
func copySnapshot(in models.MeterSnapshot) models.MeterSnapshot {
	out := in
	out.Rate = copyPtr(in.Rate)
	out.Min = copyPtr(in.Min)
	out.Avg = copyPtr(in.Avg)
	out.Max = copyPtr(in.Max)
	return out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
