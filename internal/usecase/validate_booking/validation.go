package validate_booking

import (
	"fmt"
	"time"

	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/pkg/types"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if req.ExcludeBookingID != nil && *req.ExcludeBookingID <= 0 {
		return fmt.Errorf("%w: excludeBookingId must be positive", ErrInvalidInput)
	}
	return nil
}

// checkDate rejects attempts in the past, on closed weekdays, or beyond the
// advance-booking horizon. Returns nil when the date passes.
func (uc *UseCase) checkDate(req *Request, now time.Time) *Result {
	if isStartInPast(req.Date, req.StartTime, now) {
		return &Result{Valid: false, Message: "Cannot book appointments in the past"}
	}

	if uc.calendar.IsClosedOn(req.Date.Weekday()) {
		return &Result{
			Valid:   false,
			Message: fmt.Sprintf("We are closed on %ss", req.Date.Weekday()),
		}
	}

	horizon := calendarDate(now).AddDate(0, 0, uc.calendar.MaxAdvanceDays)
	if calendarDate(req.Date).After(horizon) {
		return &Result{
			Valid:   false,
			Message: fmt.Sprintf("Bookings can only be made up to %d days in advance", uc.calendar.MaxAdvanceDays),
		}
	}

	return nil
}

// checkBusinessHours rejects start times outside [open, close).
func (uc *UseCase) checkBusinessHours(req *Request) *Result {
	if uc.calendar.WithinBusinessHours(req.StartTime) {
		return nil
	}
	return &Result{
		Valid: false,
		Message: fmt.Sprintf("Bookings are only available between %s and %s",
			uc.calendar.OpenTime, uc.calendar.CloseTime),
	}
}

// checkConflicts rejects the attempt when it overlaps, buffer included, any
// active booking of the day. Returns (nil, nil) when the slot is free.
func (uc *UseCase) checkConflicts(req *Request, bookings []*domain.Booking) (*Result, error) {
	candidate := domain.SlotRequest{StartTime: req.StartTime, Service: req.Service}

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		conflict, err := uc.conflicts.ConflictsWithInterval(candidate, b.StartTime, b.DurationMinutes)
		if err != nil {
			return nil, err
		}
		if conflict {
			return &Result{
				Valid: false,
				Message: fmt.Sprintf(
					"This time slot conflicts with an existing %s appointment. Please choose a different time.",
					b.ServiceName),
				Conflict: &ConflictingBooking{
					ID:              b.ID,
					ServiceName:     b.ServiceName,
					StartTime:       b.StartTime,
					DurationMinutes: b.DurationMinutes,
				},
			}, nil
		}
	}

	return nil, nil
}

// isStartInPast compares the attempt's date and start time with the clock.
// Earlier dates are always in the past; today's date is in the past once the
// start time has been reached.
func isStartInPast(date time.Time, start types.TimeString, now time.Time) bool {
	dateOnly := calendarDate(date)
	nowOnly := calendarDate(now)

	if dateOnly.Before(nowOnly) {
		return true
	}
	if dateOnly.After(nowOnly) {
		return false
	}
	return start.IsBefore(types.NewTimeString(now))
}

// calendarDate projects t's wall-clock date into UTC. Request dates parse in
// UTC while the clock runs in the business's zone; comparing instants across
// the two Locations would shift dates near midnight, so date checks compare
// these projections instead.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
