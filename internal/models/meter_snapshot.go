package models

import "time"

// MeterSnapshot is a point-in-time copy of a meter's published values.
//
// Example JSON for an aggregate meter after its first batch:
//
//	{
//	  "name": "latency",
//	  "kind": "aggregate",
//	  "unit": "ms",
//	  "ready": true,
//	  "min": 12,
//	  "avg": 20.5,
//	  "max": 31,
//	  "summary": "min:12ms, avg:20.5ms, max:31ms",
//	  "reportedAt": "2026-10-18T09:30:00Z"
//	}
//
// Ready is false until a rate window or an aggregate batch has closed.
type MeterSnapshot struct {
	Name       string    `json:"name"`
	Kind       MeterKind `json:"kind"`
	Unit       string    `json:"unit,omitempty"`
	Ready      bool      `json:"ready"`
	Rate       *float32  `json:"rate,omitempty"`
	Min        *float64  `json:"min,omitempty"`
	Avg        *float32  `json:"avg,omitempty"`
	Max        *float64  `json:"max,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	ReportedAt time.Time `json:"reportedAt,omitempty"`
}

// NewPendingSnapshot returns the snapshot of a meter that has not reported yet.
func NewPendingSnapshot(def MeterDefinition) *MeterSnapshot {
	return &MeterSnapshot{
		Name: def.Name,
		Kind: def.Kind,
		Unit: def.Unit,
	}
}
