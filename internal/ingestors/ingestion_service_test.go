package ingestors_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"opsmeter/internal/ingestors"
	"opsmeter/internal/models"
	"opsmeter/internal/shared/svcerrors"
	streammocks "opsmeter/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCatalog(t *testing.T) *models.MeterCatalog {
	t.Helper()
	catalog, err := models.NewMeterCatalog([]models.MeterDefinition{
		{Name: "requests", Kind: models.MeterRate},
		{Name: "latency", Kind: models.MeterAggregate, Threshold: 3, Unit: "ms", ValueType: models.ValueFloat},
		{Name: "queue_depth", Kind: models.MeterAggregate, Threshold: 2, ValueType: models.ValueInt},
	})
	require.NoError(t, err)
	return catalog
}

func TestIngestSamples_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockSampleProducer(ctrl)
	service := ingestors.NewIngestionService(newTestCatalog(t), producer)

	producer.EXPECT().
		Produce(gomock.Any(), []models.Sample{
			{Meter: "requests", Count: 3},
			{Meter: "requests", Count: 1},
			{Meter: "requests", Count: 0},
			{Meter: "latency", Value: 12.5},
			{Meter: "queue_depth", Value: -4},
		}).
		Return(nil)

	body := strings.NewReader(`[
		{"meter": "requests", "count": 3},
		{"meter": " requests "},
		{"meter": "requests", "count": 0},
		{"meter": "latency", "value": 12.5},
		{"meter": "queue_depth", "value": -4}
	]`)
	result, err := service.IngestSamples(context.Background(), "application/json", body)

	require.NoError(t, err)
	assert.Equal(t, &ingestors.IngestResult{Accepted: 5}, result)
}

func TestIngestSamples_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   string
		body     string
		wantCode string
		wantMsg  string
	}{
		{name: "unsupported format", format: "xml", body: `[]`, wantCode: "ING_1000", wantMsg: "unsupported input format"},
		{name: "invalid json", format: "json", body: `{invalid`, wantCode: "ING_1000", wantMsg: "invalid json"},
		{name: "empty batch", format: "json", body: `[]`, wantCode: "ING_1000", wantMsg: "samples cannot be empty"},
		{name: "missing meter", format: "json", body: `[{"value": 1}]`, wantCode: "ING_1000", wantMsg: "item at index 0"},
		{name: "negative count", format: "json", body: `[{"meter": "requests", "count": -1}]`, wantCode: "ING_1000", wantMsg: "invalid json"},
		{name: "unknown meter", format: "json", body: `[{"meter": "requests"}, {"meter": "errors"}]`, wantCode: "ING_1001", wantMsg: `item at index 1: unknown meter "errors"`},
		{name: "value on rate meter", format: "json", body: `[{"meter": "requests", "value": 2}]`, wantCode: "ING_1002", wantMsg: "rate meters take count"},
		{name: "count on aggregate meter", format: "json", body: `[{"meter": "latency", "count": 2}]`, wantCode: "ING_1002", wantMsg: "aggregate meters take value"},
		{name: "missing value", format: "json", body: `[{"meter": "latency"}]`, wantCode: "ING_1002", wantMsg: "value is required"},
		{name: "fractional int value", format: "json", body: `[{"meter": "queue_depth", "value": 1.5}]`, wantCode: "ING_1002", wantMsg: "value must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			producer := streammocks.NewMockSampleProducer(ctrl)
			producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Times(0)
			service := ingestors.NewIngestionService(newTestCatalog(t), producer)

			result, err := service.IngestSamples(context.Background(), tt.format, strings.NewReader(tt.body))

			require.Error(t, err)
			assert.Nil(t, result)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
			assert.Contains(t, svcErr.Message, tt.wantMsg)
		})
	}
}

func TestIngestSamples_BatchTooLarge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockSampleProducer(ctrl)
	service := ingestors.NewIngestionService(newTestCatalog(t), producer)

	body := bytes.NewReader(bytes.Repeat([]byte(" "), 1024*1024+1))
	result, err := service.IngestSamples(context.Background(), "json", body)

	require.Error(t, err)
	assert.Nil(t, result)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Contains(t, svcErr.Message, "batch too large")
}

func TestIngestSamples_NilBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := ingestors.NewIngestionService(newTestCatalog(t), streammocks.NewMockSampleProducer(ctrl))

	_, err := service.IngestSamples(context.Background(), "json", nil)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
}

func TestIngestSamples_ProducerFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockSampleProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(context.Canceled)
	service := ingestors.NewIngestionService(newTestCatalog(t), producer)

	result, err := service.IngestSamples(context.Background(), "json", strings.NewReader(`[{"meter": "requests"}]`))

	require.Error(t, err)
	assert.Nil(t, result)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_9000", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
	assert.ErrorIs(t, err, context.Canceled)
}
