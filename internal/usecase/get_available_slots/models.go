package get_available_slots

import (
	"time"

	"github.com/premium-barber/booking-service/pkg/types"
)

// Request asks for the open start times of one service on one date.
type Request struct {
	Date    time.Time // requested calendar date (time part ignored)
	Service string    // catalog service name

	// ExcludeBookingID ignores one existing booking when checking conflicts,
	// so a customer rescheduling sees their own slot as free.
	ExcludeBookingID *int64
}

// Response lists the start times still bookable for the request.
type Response struct {
	Date    time.Time
	Service string
	Slots   []types.TimeString
}
