package create_booking

import (
	"context"
	"time"

	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/internal/integrations/smsgateway"
	"github.com/premium-barber/booking-service/internal/usecase/validate_booking"
)

// BookingRepository is the write surface the submission flow needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// BookingValidator runs the policy pipeline. Inside the submission
// transaction it sees the same snapshot as the insert that follows.
type BookingValidator interface {
	Execute(ctx context.Context, req *validate_booking.Request) (*validate_booking.Result, error)
}

// TransactionManager runs a function inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SMSSender delivers one message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) (*smsgateway.SendReport, error)
}

// MessageRenderer renders customer-facing SMS texts.
type MessageRenderer interface {
	Confirmation(service, date, time string) string
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the submission flow needs.
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
