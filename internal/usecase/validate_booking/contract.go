package validate_booking

import (
	"context"
	"time"

	"github.com/premium-barber/booking-service/internal/domain"
)

// BookingRepository is the read surface the validator needs.
type BookingRepository interface {
	// GetByDate returns the bookings for one calendar date. With an empty
	// status filter only active bookings are returned. Inside a transaction
	// the implementation locks the rows it reads.
	GetByDate(ctx context.Context, date time.Time, filter domain.DateBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the validator needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
