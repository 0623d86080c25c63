package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAvailabilityUnknown is returned when the booking store could not be
	// read to verify the slot. The submission must fail loudly rather than
	// guess.
	ErrAvailabilityUnknown = errors.New("availability unknown")

	// ErrInternal is returned on unexpected internal failures.
	ErrInternal = errors.New("usecase: internal error")
)
