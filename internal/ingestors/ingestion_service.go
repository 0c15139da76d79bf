package ingestors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"opsmeter/internal/models"
	"opsmeter/internal/shared/loggers"
	"opsmeter/internal/shared/metrics"
	"opsmeter/internal/shared/svcerrors"
	"opsmeter/internal/shared/validators"
	"opsmeter/internal/streams"
)

const (
	maxBatchBytes = 1024 * 1024
	maxMeterLen   = 128
)

const (
	FormatJSON = "json"
)

// IngestResult represents the result of a sample batch ingestion.
type IngestResult struct {
	Accepted int `json:"accepted"`
}

// sampleRequest is one item of the POST /samples body.
//
//	[
//	  {"meter": "requests", "count": 3},
//	  {"meter": "requests"},
//	  {"meter": "latency", "value": 12.5}
//	]
//
// A rate sample without count counts one event; an explicit count of 0 counts none.
type sampleRequest struct {
	Meter string   `json:"meter" validate:"required,max=128"`
	Value *float64 `json:"value"`
	Count *uint32  `json:"count"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestSamples validates a batch of samples and hands them to the tracking workers.
	IngestSamples(ctx context.Context, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	catalog        *models.MeterCatalog
	sampleProducer streams.SampleProducer
	validate       *validators.Validate
}

func NewIngestionService(catalog *models.MeterCatalog, sampleProducer streams.SampleProducer) IngestionService {
	return &ingestionService{
		catalog:        catalog,
		sampleProducer: sampleProducer,
		validate:       validators.New(),
	}
}

func (s *ingestionService) IngestSamples(ctx context.Context, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting samples with format: %s", format)

	samples, err := s.validateSamples(format, r)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	if err := s.sampleProducer.Produce(ctx, samples); err != nil {
		svcErr := errInternalSamplePublisherFailed(err)
		metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	for _, sample := range samples {
		metricSampleIngestedTotal.WithLabelValues(sample.Meter).Inc()
	}
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &IngestResult{Accepted: len(samples)}, nil
}

func (s *ingestionService) validateSamples(format string, r io.Reader) ([]models.Sample, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	buf, err := s.readWithLimit(r, maxBatchBytes)
	if err != nil {
		return nil, err
	}

	var requests []sampleRequest
	if err := json.Unmarshal(buf, &requests); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}
	if len(requests) == 0 {
		return nil, errValidationFailed("samples cannot be empty", nil)
	}

	samples := make([]models.Sample, 0, len(requests))
	for i := range requests {
		sample, err := s.toSample(&requests[i], i)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// readWithLimit reads r fully and fails when it holds more than max bytes.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max+1)))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > max {
		return nil, errValidationFailed("batch too large: must be <= 1MB", nil)
	}
	return buf, nil
}

func (s *ingestionService) toSample(req *sampleRequest, index int) (models.Sample, error) {
	req.Meter = strings.TrimSpace(req.Meter)
	if err := s.validate.Struct(req); err != nil {
		return models.Sample{}, errValidationFailed(fmt.Sprintf("item at index %d: meter is required and must be at most %d characters", index, maxMeterLen), err)
	}

	def, ok := s.catalog.Lookup(req.Meter)
	if !ok {
		return models.Sample{}, errUnknownMeter(index, req.Meter)
	}

	sample := models.Sample{Meter: def.Name}
	switch def.Kind {
	case models.MeterRate:
		if req.Value != nil {
			return models.Sample{}, errKindMismatch(index, "rate meters take count, not value")
		}
		sample.Count = 1
		if req.Count != nil {
			sample.Count = *req.Count
		}
	case models.MeterAggregate:
		if req.Count != nil {
			return models.Sample{}, errKindMismatch(index, "aggregate meters take value, not count")
		}
		if req.Value == nil {
			return models.Sample{}, errKindMismatch(index, "value is required")
		}
		if def.ValueType == models.ValueInt && !isInt64(*req.Value) {
			return models.Sample{}, errKindMismatch(index, "value must be an integer")
		}
		sample.Value = *req.Value
	}
	return sample, nil
}

func isInt64(v float64) bool {
	return v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64
}
