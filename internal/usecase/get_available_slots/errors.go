package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceNotFound is returned when the service is not in the catalog.
	ErrServiceNotFound = errors.New("service not found")

	// ErrAvailabilityUnknown is returned when the booking store cannot be
	// read. Callers must surface this as a failure, never as an empty slot
	// list: an empty list tells the customer the day is fully booked, which
	// would be a lie here.
	ErrAvailabilityUnknown = errors.New("availability unknown")

	// ErrInternal is returned on unexpected internal failures.
	ErrInternal = errors.New("usecase: internal error")
)
