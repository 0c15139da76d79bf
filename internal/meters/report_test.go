package meters

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report interface{ String() string }
		want   string
	}{
		{
			name:   "int without unit",
			report: NewReport(2, 5.0, 8),
			want:   "min:2, avg:5, max:8",
		},
		{
			name:   "int with unit",
			report: NewReport[int32](-1, 2.0, 5).WithUnit("ms"),
			want:   "min:-1ms, avg:2ms, max:5ms",
		},
		{
			name:   "float with unit",
			report: NewReport[float32](1.0, 2.5, 5.5).WithUnit(" kB"),
			want:   "min:1 kB, avg:2.5 kB, max:5.5 kB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.String())
		})
	}
}

func TestReport_WithUnitReturnsCopy(t *testing.T) {
	t.Parallel()

	r := NewReport(1, 2.0, 3)
	withUnit := r.WithUnit("req")

	assert.Equal(t, "", r.Unit)
	assert.Equal(t, "req", withUnit.Unit)
	assert.NotEqual(t, r, withUnit)
	assert.Equal(t, NewReport(1, 2.0, 3).WithUnit("req"), withUnit)
}

func TestReport_MarshalZerologObject(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("report", NewReport[int64](2, 5.0, 8).WithUnit("ms")).Msg("batch closed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	report, ok := line["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), report["min"])
	assert.Equal(t, float64(5), report["avg"])
	assert.Equal(t, float64(8), report["max"])
	assert.Equal(t, "ms", report["unit"])
}
