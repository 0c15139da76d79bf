package meters

import "errors"

var (
	ErrInvalidThreshold    = errors.New("threshold can not be zero")
	ErrNonPositiveInterval = errors.New("interval must be positive")
)
