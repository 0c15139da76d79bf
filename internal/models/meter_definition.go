package models

import (
	"errors"
	"fmt"
	"sort"
)

var ErrDuplicateMeter = errors.New("duplicate meter name")

// MeterDefinition declares a meter served by the application.
//
// IntervalSeconds applies to rate meters; Threshold, Unit and ValueType to aggregate meters.
type MeterDefinition struct {
	Name            string
	Kind            MeterKind
	IntervalSeconds float32
	Threshold       uint8
	Unit            string
	ValueType       ValueType
}

// MeterCatalog indexes meter definitions by name.
type MeterCatalog struct {
	byName map[string]MeterDefinition
	names  []string
}

// NewMeterCatalog builds a catalog, rejecting empty or duplicate names.
func NewMeterCatalog(definitions []MeterDefinition) (*MeterCatalog, error) {
	catalog := &MeterCatalog{byName: make(map[string]MeterDefinition, len(definitions))}
	for _, def := range definitions {
		if def.Name == "" {
			return nil, fmt.Errorf("meter name cannot be empty")
		}
		if _, exists := catalog.byName[def.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMeter, def.Name)
		}
		catalog.byName[def.Name] = def
		catalog.names = append(catalog.names, def.Name)
	}
	sort.Strings(catalog.names)
	return catalog, nil
}

func (c *MeterCatalog) Lookup(name string) (MeterDefinition, bool) {
	def, ok := c.byName[name]
	return def, ok
}

// Names returns meter names in lexical order.
func (c *MeterCatalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Definitions returns all definitions ordered by name.
func (c *MeterCatalog) Definitions() []MeterDefinition {
	defs := make([]MeterDefinition, 0, len(c.names))
	for _, name := range c.names {
		defs = append(defs, c.byName[name])
	}
	return defs
}
