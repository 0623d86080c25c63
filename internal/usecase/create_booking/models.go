package create_booking

import (
	"time"

	"github.com/premium-barber/booking-service/internal/usecase/validate_booking"
	"github.com/premium-barber/booking-service/pkg/types"
)

// Request carries the raw booking form as submitted by the customer. Values
// arrive as strings and are checked by the form validator before anything
// touches the store.
type Request struct {
	UserID            int64
	Service           string
	Date              string // "YYYY-MM-DD"
	StartTime         string // "HH:MM"
	Phone             string // any accepted Kenyan format
	ReminderRequested bool
}

// CreatedBooking describes the stored appointment.
type CreatedBooking struct {
	ID              int64
	UserID          int64
	ServiceName     string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	CustomerPhone   string
	PriceMinorUnits int64
	CreatedAt       time.Time
}

// Rejection is a policy refusal with a customer-facing message. It covers
// both rejections the validator produced and conflicts detected by the store
// at insert time; the two are the same outcome for the customer.
type Rejection struct {
	Message  string
	Conflict *validate_booking.ConflictingBooking
}

// SMSStatus reports the confirmation message attempt. A failed send never
// undoes the booking; it is surfaced here so the customer can be told.
type SMSStatus struct {
	Requested bool
	Sent      bool
	Message   string
}

// Response is the submission outcome. Exactly one of Booking, FieldErrors and
// Rejection is set.
type Response struct {
	Booking     *CreatedBooking
	FieldErrors map[string]string
	Rejection   *Rejection
	SMS         *SMSStatus
}
