package tracking

import (
	"fmt"

	"opsmeter/internal/shared/svcerrors"
)

const (
	codeUnknownMeter = "TRK_1000"

	codeInternalSnapshotStoreFailed = "TRK_9000"
)

// errUnknownMeter returns an error when a sample is routed to a lane that does not own its meter.
func errUnknownMeter(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownMeter, "unknown meter", cause)
}

// errInternalSnapshotStoreFailed returns an error when publishing a snapshot fails.
func errInternalSnapshotStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSnapshotStoreFailed, fmt.Errorf("snapshotStoreFailed: %w", cause))
}
