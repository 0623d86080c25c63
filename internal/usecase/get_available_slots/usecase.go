package get_available_slots

import (
	"context"
	"fmt"

	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/pkg/retry"
	"github.com/premium-barber/booking-service/pkg/types"
)

// UseCase resolves the bookable start times for a service on a date.
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      *domain.ServiceCatalog
	calendar     domain.BusinessCalendar
	conflicts    *domain.ConflictDetector
	timeProvider TimeProvider
	readRetry    retry.Policy
	logger       Logger
}

// NewUseCase creates the resolver.
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

// Execute returns the start times from the business slot grid that the
// requested service can still occupy on the requested date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%q, date=%s",
		req.Service, req.Date.Format(domain.DateFormat))

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	if !uc.catalog.Contains(req.Service) {
		uc.logger.Warn("GetAvailableSlots: service %q not in catalog", req.Service)
		return nil, ErrServiceNotFound
	}

	now := uc.timeProvider.Now()

	// 2. Past dates and closed weekdays have no bookable slots.
	if isDateInPast(req.Date, now) || uc.calendar.IsClosedOn(req.Date.Weekday()) {
		return &Response{
			Date:    req.Date,
			Service: req.Service,
			Slots:   []types.TimeString{},
		}, nil
	}

	// 3. Load the day's active bookings. Reads are retried; if the store
	// stays unreachable we must say so rather than present the day as free
	// or as full.
	var bookings []*domain.Booking
	err := uc.readRetry.Do(ctx, func(ctx context.Context) error {
		var readErr error
		bookings, readErr = uc.bookingRepo.GetByDate(ctx, req.Date, domain.DateBookingsFilter{
			ExcludeID: req.ExcludeBookingID,
		})
		return readErr
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrAvailabilityUnknown, err)
	}

	// 4. Filter the slot grid against the existing bookings.
	slots, err := uc.availableSlots(req.Service, req.Date, now, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to filter slots: %v", err)
		return nil, fmt.Errorf("%w: failed to filter slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots open for service=%q, date=%s",
		len(slots), len(uc.calendar.SlotGrid), req.Service, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:    req.Date,
		Service: req.Service,
		Slots:   slots,
	}, nil
}
