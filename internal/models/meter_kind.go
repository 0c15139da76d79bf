package models

import "fmt"

type MeterKind string

const (
	MeterRate      MeterKind = "rate"
	MeterAggregate MeterKind = "aggregate"
)

// ValueType is the element type of an aggregate meter.
type ValueType string

const (
	ValueInt   ValueType = "int"
	ValueFloat ValueType = "float"
)

func NewValueTypeFromString(s string) (ValueType, error) {
	switch ValueType(s) {
	case ValueInt, ValueFloat:
		return ValueType(s), nil
	default:
		return "", fmt.Errorf("invalid value type: %q", s)
	}
}
