package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the requester may not see or change
	// the booking.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned when the requested status change is
	// not allowed from the booking's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSlotTaken is returned when reinstating a cancelled booking would
	// collide with an active booking holding the same slot.
	ErrSlotTaken = errors.New("slot already taken")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected internal failures.
	ErrInternal = errors.New("service: internal error")
)
