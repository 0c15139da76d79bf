package meters

import (
	"github.com/rs/zerolog"
)

// Report is the min/avg/max summary of one completed AggregateMeter batch.
type Report[T Number] struct {
	Min  T
	Avg  float32
	Max  T
	Unit string
}

// NewReport creates a Report without a unit.
func NewReport[T Number](min T, avg float32, max T) Report[T] {
	return Report[T]{Min: min, Avg: avg, Max: max}
}

// WithUnit returns a copy of r carrying unit.
func (r Report[T]) WithUnit(unit string) Report[T] {
	r.Unit = unit
	return r
}

// String formats r as "min:<min><unit>, avg:<avg><unit>, max:<max><unit>".
func (r Report[T]) String() string {
	return "min:" + formatNumber(r.Min) + r.Unit +
		", avg:" + formatNumber(r.Avg) + r.Unit +
		", max:" + formatNumber(r.Max) + r.Unit
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (r Report[T]) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("min", float64(r.Min)).
		Float32("avg", r.Avg).
		Float64("max", float64(r.Max))
	if r.Unit != "" {
		e.Str("unit", r.Unit)
	}
}
