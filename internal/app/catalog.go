package app

import (
	"opsmeter/internal/models"
	"opsmeter/internal/shared/configs"
)

// newMeterCatalog turns the configured meters into a catalog.
// Names must be unique across rate and aggregate meters.
func newMeterCatalog(config configs.MetersConfig) (*models.MeterCatalog, error) {
	definitions := make([]models.MeterDefinition, 0, len(config.Rates)+len(config.Aggregates))
	for _, rate := range config.Rates {
		definitions = append(definitions, models.MeterDefinition{
			Name:            rate.Name,
			Kind:            models.MeterRate,
			IntervalSeconds: rate.IntervalSeconds,
		})
	}
	for _, aggregate := range config.Aggregates {
		valueType, err := models.NewValueTypeFromString(aggregate.ValueType)
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, models.MeterDefinition{
			Name:      aggregate.Name,
			Kind:      models.MeterAggregate,
			Threshold: uint8(aggregate.Threshold),
			Unit:      aggregate.Unit,
			ValueType: valueType,
		})
	}
	return models.NewMeterCatalog(definitions)
}
