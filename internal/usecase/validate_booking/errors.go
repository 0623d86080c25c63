package validate_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceNotFound is returned when the service is not in the catalog.
	ErrServiceNotFound = errors.New("service not found")

	// ErrAvailabilityUnknown is returned when the booking store cannot be
	// read, so neither a pass nor a rejection would be honest. Callers must
	// not treat this as "valid".
	ErrAvailabilityUnknown = errors.New("availability unknown")

	// ErrInternal is returned on unexpected internal failures.
	ErrInternal = errors.New("usecase: internal error")
)
