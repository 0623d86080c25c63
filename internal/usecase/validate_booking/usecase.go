package validate_booking

import (
	"context"
	"fmt"

	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/pkg/dbmetrics"
	"github.com/premium-barber/booking-service/pkg/retry"
)

// UseCase checks a booking attempt against business policy: date validity,
// business hours, then double-booking. The checks run in that order and the
// first failure wins, so a request in the past is reported as "in the past"
// even when its slot is also taken.
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      *domain.ServiceCatalog
	calendar     domain.BusinessCalendar
	conflicts    *domain.ConflictDetector
	timeProvider TimeProvider
	readRetry    retry.Policy
	logger       Logger
}

// NewUseCase creates the validator.
func NewUseCase(
	bookingRepo BookingRepository,
	catalog *domain.ServiceCatalog,
	calendar domain.BusinessCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		calendar:     calendar,
		conflicts:    domain.NewConflictDetector(catalog, calendar.BufferMinutes),
		timeProvider: &RealTimeProvider{},
		readRetry:    retry.DefaultReadPolicy,
		logger:       logger,
	}
}

// Execute runs the policy pipeline. The result is deterministic for a given
// request, clock and stored state, so calling it twice without an intervening
// write yields the same verdict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		return nil, err
	}

	if !uc.catalog.Contains(req.Service) {
		uc.logger.Warn("ValidateBooking: service %q not in catalog", req.Service)
		return nil, ErrServiceNotFound
	}

	now := uc.timeProvider.Now()

	// 2. Date validity.
	if result := uc.checkDate(req, now); result != nil {
		return result, nil
	}

	// 3. Business hours.
	if result := uc.checkBusinessHours(req); result != nil {
		return result, nil
	}

	// 4. Double-booking against the day's active bookings. Outside a
	// transaction the read is retried; inside one a failed read aborts the
	// transaction anyway, so a single attempt is made.
	bookings, err := uc.loadDayBookings(ctx, req)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrAvailabilityUnknown, err)
	}

	result, err := uc.checkConflicts(req, bookings)
	if err != nil {
		uc.logger.Error("ValidateBooking: conflict check failed: %v", err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}
	if result != nil {
		return result, nil
	}

	return &Result{Valid: true}, nil
}

func (uc *UseCase) loadDayBookings(ctx context.Context, req *Request) ([]*domain.Booking, error) {
	filter := domain.DateBookingsFilter{ExcludeID: req.ExcludeBookingID}

	if dbmetrics.IsInTransaction(ctx) {
		return uc.bookingRepo.GetByDate(ctx, req.Date, filter)
	}

	var bookings []*domain.Booking
	err := uc.readRetry.Do(ctx, func(ctx context.Context) error {
		var readErr error
		bookings, readErr = uc.bookingRepo.GetByDate(ctx, req.Date, filter)
		return readErr
	})
	return bookings, err
}
