package queries

import (
	"fmt"

	"opsmeter/internal/shared/svcerrors"
)

// MeterQueryService errors
const (
	codeMeterNotFound = "QRY_1000"

	codeInternalSnapshotStoreFailed = "QRY_9000"
)

func errMeterNotFound(name string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeMeterNotFound, fmt.Sprintf("meter %q not found", name), nil)
}

func errInternalSnapshotStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSnapshotStoreFailed, fmt.Errorf("snapshotStoreFailed: %w", cause))
}
