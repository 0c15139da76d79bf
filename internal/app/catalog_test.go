package app

import (
	"testing"

	"opsmeter/internal/models"
	"opsmeter/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeterCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := newMeterCatalog(configs.MetersConfig{
		Rates: []configs.RateMeterConfig{
			{Name: "requests", IntervalSeconds: 0.5},
		},
		Aggregates: []configs.AggregateMeterConfig{
			{Name: "latency", Threshold: 255, Unit: "ms", ValueType: "float"},
			{Name: "queue_depth", Threshold: 1, ValueType: "int"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"latency", "queue_depth", "requests"}, catalog.Names())

	latency, ok := catalog.Lookup("latency")
	require.True(t, ok)
	assert.Equal(t, models.MeterDefinition{
		Name:      "latency",
		Kind:      models.MeterAggregate,
		Threshold: 255,
		Unit:      "ms",
		ValueType: models.ValueFloat,
	}, latency)

	requests, ok := catalog.Lookup("requests")
	require.True(t, ok)
	assert.Equal(t, models.MeterRate, requests.Kind)
	assert.Equal(t, float32(0.5), requests.IntervalSeconds)
}

func TestNewMeterCatalog_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  configs.MetersConfig
		wantErr error
	}{
		{
			name: "duplicate across kinds",
			config: configs.MetersConfig{
				Rates:      []configs.RateMeterConfig{{Name: "requests"}},
				Aggregates: []configs.AggregateMeterConfig{{Name: "requests", Threshold: 2, ValueType: "int"}},
			},
			wantErr: models.ErrDuplicateMeter,
		},
		{
			name: "bad value type",
			config: configs.MetersConfig{
				Aggregates: []configs.AggregateMeterConfig{{Name: "latency", Threshold: 2, ValueType: "decimal"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := newMeterCatalog(tt.config)

			require.Error(t, err)
			assert.Nil(t, catalog)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
