package domain

import (
	"time"

	"github.com/premium-barber/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer appointment.
// ServiceName, DurationMinutes and PriceMinorUnits are snapshots taken from
// the catalog at creation time, so later catalog changes never alter history.
type Booking struct {
	ID                int64
	UserID            int64
	ServiceName       string
	BookingDate       time.Time
	StartTime         types.TimeString
	DurationMinutes   int
	Status            BookingStatus
	CustomerPhone     string // canonical E.164 form, e.g. "+254712345678"
	ReminderRequested bool
	PriceMinorUnits   int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking occupies its calendar slot.
// Completed and cancelled bookings do not block new reservations.
func (b *Booking) IsActive() bool {
	return b.Status == StatusUpcoming || b.Status == StatusConfirmed
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo reports whether an admin may move the booking to target.
// Allowed: upcoming/confirmed -> completed, upcoming/confirmed -> cancelled,
// cancelled -> upcoming (reinstating). Bookings are never hard-deleted.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch b.Status {
	case StatusUpcoming, StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	case StatusCancelled:
		return target == StatusUpcoming
	default:
		return false
	}
}

// ParseBookingStatus validates a status string.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

// BookingsFilter narrows admin booking listings.
type BookingsFilter struct {
	Status    *BookingStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// DateBookingsFilter selects the bookings considered when computing
// availability for a single date.
type DateBookingsFilter struct {
	Statuses  []BookingStatus // empty means ActiveStatuses
	ExcludeID *int64          // set when rescheduling an existing booking
}
