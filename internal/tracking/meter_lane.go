package tracking

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"opsmeter/internal/meters"
	"opsmeter/internal/models"

	"github.com/rs/zerolog"
)

var ErrUnknownMeter = errors.New("unknown meter")

// Publication is emitted when a meter closes a rate window or an aggregate batch.
type Publication struct {
	Snapshot *models.MeterSnapshot
	// Report describes the closed window or batch for structured logging.
	Report zerolog.LogObjectMarshaler
}

// MeterLane owns a set of meters on behalf of a single worker.
//
// Meters are not safe for concurrent use, so a lane must only be touched from the
// goroutine that owns it. Readers observe meters through published snapshots.
type MeterLane struct {
	meters map[string]trackedMeter
	names  []string
}

type trackedMeter interface {
	zerolog.LogObjectMarshaler
	observe(sample models.Sample) bool
	flush(now time.Time) bool
	snapshot(now time.Time) *models.MeterSnapshot
}

// NewMeterLane builds the meters of definitions with their first rate window starting at now.
func NewMeterLane(definitions []models.MeterDefinition, now time.Time) (*MeterLane, error) {
	lane := &MeterLane{meters: make(map[string]trackedMeter, len(definitions))}
	for _, def := range definitions {
		meter, err := newTrackedMeter(def, now)
		if err != nil {
			return nil, fmt.Errorf("meter %q: %w", def.Name, err)
		}
		lane.meters[def.Name] = meter
		lane.names = append(lane.names, def.Name)
	}
	sort.Strings(lane.names)
	return lane, nil
}

// NewMeterLanes distributes the catalog over partitions lanes using partitionOf,
// so that each meter is owned by exactly one lane.
func NewMeterLanes(catalog *models.MeterCatalog, partitions int, partitionOf func(key string) int, now time.Time) ([]*MeterLane, error) {
	grouped := make([][]models.MeterDefinition, partitions)
	for _, def := range catalog.Definitions() {
		idx := partitionOf(def.Name)
		if idx < 0 || idx >= partitions {
			return nil, fmt.Errorf("meter %q mapped to partition %d out of %d", def.Name, idx, partitions)
		}
		grouped[idx] = append(grouped[idx], def)
	}

	lanes := make([]*MeterLane, partitions)
	for i, defs := range grouped {
		lane, err := NewMeterLane(defs, now)
		if err != nil {
			return nil, err
		}
		lanes[i] = lane
	}
	return lanes, nil
}

// Names returns the meters owned by the lane in lexical order.
func (l *MeterLane) Names() []string {
	return append([]string(nil), l.names...)
}

// Observe feeds sample to its meter. It returns a publication when the sample closed an aggregate batch.
func (l *MeterLane) Observe(sample models.Sample, now time.Time) (*Publication, error) {
	meter, ok := l.meters[sample.Meter]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeter, sample.Meter)
	}
	if !meter.observe(sample) {
		return nil, nil
	}
	return &Publication{Snapshot: meter.snapshot(now), Report: meter}, nil
}

// Flush updates every rate meter at now and returns the ones whose window closed.
func (l *MeterLane) Flush(now time.Time) []Publication {
	var publications []Publication
	for _, name := range l.names {
		meter := l.meters[name]
		if meter.flush(now) {
			publications = append(publications, Publication{Snapshot: meter.snapshot(now), Report: meter})
		}
	}
	return publications
}

// Snapshot returns the current published values of a meter.
func (l *MeterLane) Snapshot(name string, now time.Time) (*models.MeterSnapshot, bool) {
	meter, ok := l.meters[name]
	if !ok {
		return nil, false
	}
	return meter.snapshot(now), true
}

func newTrackedMeter(def models.MeterDefinition, now time.Time) (trackedMeter, error) {
	switch def.Kind {
	case models.MeterRate:
		return newRateTracker(def, now)
	case models.MeterAggregate:
		switch def.ValueType {
		case models.ValueInt:
			return newAggregateTracker(def, func(v float64) int64 { return int64(v) })
		case models.ValueFloat:
			return newAggregateTracker(def, func(v float64) float64 { return v })
		default:
			return nil, fmt.Errorf("unsupported value type %q", def.ValueType)
		}
	default:
		return nil, fmt.Errorf("unsupported meter kind %q", def.Kind)
	}
}

type rateTracker struct {
	def    models.MeterDefinition
	meter  *meters.RateMeter
	closed bool
}

func newRateTracker(def models.MeterDefinition, now time.Time) (*rateTracker, error) {
	if def.IntervalSeconds == 0 {
		return &rateTracker{def: def, meter: meters.NewRateMeter(now)}, nil
	}
	meter, err := meters.NewRateMeterWithInterval(now, def.IntervalSeconds)
	if err != nil {
		return nil, err
	}
	return &rateTracker{def: def, meter: meter}, nil
}

func (t *rateTracker) observe(sample models.Sample) bool {
	t.meter.Add(sample.Count)
	return false
}

func (t *rateTracker) flush(now time.Time) bool {
	if !t.meter.Update(now) {
		return false
	}
	t.closed = true
	return true
}

func (t *rateTracker) snapshot(now time.Time) *models.MeterSnapshot {
	snapshot := models.NewPendingSnapshot(t.def)
	if !t.closed {
		return snapshot
	}
	rate := t.meter.Rate()
	snapshot.Ready = true
	snapshot.Rate = &rate
	snapshot.ReportedAt = now
	return snapshot
}

func (t *rateTracker) MarshalZerologObject(e *zerolog.Event) {
	e.Float32("rate", t.meter.Rate()).
		Dur("interval", t.meter.Interval())
}

type aggregateTracker[T meters.Number] struct {
	def     models.MeterDefinition
	meter   *meters.AggregateMeter[T]
	convert func(float64) T
}

func newAggregateTracker[T meters.Number](def models.MeterDefinition, convert func(float64) T) (*aggregateTracker[T], error) {
	meter, err := meters.NewAggregateMeter[T](def.Threshold)
	if err != nil {
		return nil, err
	}
	return &aggregateTracker[T]{def: def, meter: meter.WithUnit(def.Unit), convert: convert}, nil
}

func (t *aggregateTracker[T]) observe(sample models.Sample) bool {
	t.meter.Add(t.convert(sample.Value))
	return t.meter.Pending() == 0
}

func (t *aggregateTracker[T]) flush(time.Time) bool {
	return false
}

func (t *aggregateTracker[T]) snapshot(now time.Time) *models.MeterSnapshot {
	snapshot := models.NewPendingSnapshot(t.def)
	report, ok := t.meter.Values()
	if !ok {
		return snapshot
	}
	minValue, maxValue := float64(report.Min), float64(report.Max)
	snapshot.Ready = true
	snapshot.Min = finiteOrNil(minValue)
	snapshot.Avg = finiteOrNil(report.Avg)
	snapshot.Max = finiteOrNil(maxValue)
	snapshot.Summary = report.String()
	snapshot.ReportedAt = now
	return snapshot
}

func (t *aggregateTracker[T]) MarshalZerologObject(e *zerolog.Event) {
	if report, ok := t.meter.Values(); ok {
		report.MarshalZerologObject(e)
	}
}

// finiteOrNil drops NaN and infinities, which JSON cannot carry. The summary keeps them.
func finiteOrNil[F float32 | float64](v F) *F {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return nil
	}
	return &v
}
