package ingestors

import (
	"fmt"

	"opsmeter/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"
	codeUnknownMeter     = "ING_1001"
	codeKindMismatch     = "ING_1002"

	codeInternalSamplePublisherFailed = "ING_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errUnknownMeter returns an error when a sample names a meter that is not configured.
func errUnknownMeter(index int, meter string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownMeter, fmt.Sprintf("item at index %d: unknown meter %q", index, meter), nil)
}

// errKindMismatch returns an error when a sample does not fit the kind of its meter.
func errKindMismatch(index int, msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeKindMismatch, fmt.Sprintf("item at index %d: %s", index, msg), nil)
}

// errInternalSamplePublisherFailed returns an error when samples cannot be handed to the tracking workers.
func errInternalSamplePublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSamplePublisherFailed, fmt.Errorf("samplePublisherFailed: %w", cause))
}
