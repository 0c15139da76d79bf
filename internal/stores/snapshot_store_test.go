package stores

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"opsmeter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float32Ptr(v float32) *float32 { return &v }

func TestSnapshotStore_UpsertAndGet(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()
	ctx := context.Background()

	snapshot := &models.MeterSnapshot{Name: "requests", Kind: models.MeterRate, Ready: true, Rate: float32Ptr(4)}
	require.NoError(t, store.Upsert(ctx, snapshot))

	got, err := store.Get(ctx, "requests")
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	// mutations on either side do not leak into the store
	*snapshot.Rate = 100
	*got.Rate = 200
	again, err := store.Get(ctx, "requests")
	require.NoError(t, err)
	assert.Equal(t, float32(4), *again.Rate)
}

func TestSnapshotStore_UpsertOverwrites(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &models.MeterSnapshot{Name: "requests", Rate: float32Ptr(1)}))
	require.NoError(t, store.Upsert(ctx, &models.MeterSnapshot{Name: "requests", Rate: float32Ptr(2)}))

	got, err := store.Get(ctx, "requests")
	require.NoError(t, err)
	assert.Equal(t, float32(2), *got.Rate)
}

func TestSnapshotStore_GetNotFound(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()

	got, err := store.Get(context.Background(), "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSnapshotStore_UpsertRejectsUnnamed(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()

	assert.Error(t, store.Upsert(context.Background(), &models.MeterSnapshot{}))
	assert.Error(t, store.Upsert(context.Background(), nil))
}

func TestSnapshotStore_ListOrderedByName(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()
	ctx := context.Background()
	for _, name := range []string{"queue_depth", "latency", "requests"} {
		require.NoError(t, store.Upsert(ctx, &models.MeterSnapshot{Name: name}))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "latency", list[0].Name)
	assert.Equal(t, "queue_depth", list[1].Name)
	assert.Equal(t, "requests", list[2].Name)
}

func TestSnapshotStore_CancelledContext(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Upsert(ctx, &models.MeterSnapshot{Name: "requests"}), context.Canceled)
	_, err := store.Get(ctx, "requests")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSnapshotStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("meter-%d", i)
			for j := 0; j < 100; j++ {
				_ = store.Upsert(ctx, &models.MeterSnapshot{Name: name, Rate: float32Ptr(float32(j))})
				_, _ = store.List(ctx)
			}
		}(i)
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 8)
}
