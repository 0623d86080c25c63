package validate_booking

import (
	"time"

	"github.com/premium-barber/booking-service/pkg/types"
)

// Request describes a booking attempt to be checked against business policy.
type Request struct {
	Service   string
	Date      time.Time
	StartTime types.TimeString

	// ExcludeBookingID ignores one existing booking during the conflict
	// check, so reinstating or rescheduling a booking does not collide with
	// itself.
	ExcludeBookingID *int64
}

// ConflictingBooking identifies the existing appointment that blocks a
// rejected attempt.
type ConflictingBooking struct {
	ID              int64
	ServiceName     string
	StartTime       types.TimeString
	DurationMinutes int
}

// Result is the policy verdict. A rejection carries a customer-facing
// message; it is a normal outcome, not an error. Errors are reserved for the
// cases where no verdict could be reached at all.
type Result struct {
	Valid    bool
	Message  string
	Conflict *ConflictingBooking
}
