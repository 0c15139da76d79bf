package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeterCatalog_OrdersByName(t *testing.T) {
	t.Parallel()

	catalog, err := NewMeterCatalog([]MeterDefinition{
		{Name: "requests", Kind: MeterRate, IntervalSeconds: 0.5},
		{Name: "latency", Kind: MeterAggregate, Threshold: 10, Unit: "ms", ValueType: ValueFloat},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"latency", "requests"}, catalog.Names())
	defs := catalog.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "latency", defs[0].Name)
	assert.Equal(t, MeterAggregate, defs[0].Kind)

	def, ok := catalog.Lookup("requests")
	require.True(t, ok)
	assert.Equal(t, MeterRate, def.Kind)

	_, ok = catalog.Lookup("missing")
	assert.False(t, ok)
}

func TestNewMeterCatalog_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewMeterCatalog([]MeterDefinition{
		{Name: "requests", Kind: MeterRate},
		{Name: "requests", Kind: MeterAggregate, Threshold: 2, ValueType: ValueInt},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateMeter)
}

func TestNewMeterCatalog_RejectsEmptyName(t *testing.T) {
	t.Parallel()

	_, err := NewMeterCatalog([]MeterDefinition{{Kind: MeterRate}})
	assert.Error(t, err)
}

func TestNewValueTypeFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    ValueType
		wantErr bool
	}{
		{input: "int", want: ValueInt},
		{input: "float", want: ValueFloat},
		{input: "decimal", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewValueTypeFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
