package models

// Sample is one observation routed to a meter.
//
// Rate meters count Count events; a zero Count counts nothing.
// Aggregate meters add Value to their current batch.
type Sample struct {
	Meter string  `json:"meter"`
	Value float64 `json:"value"`
	Count uint32  `json:"count"`
}
