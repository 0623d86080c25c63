package get_available_slots

import (
	"time"

	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/pkg/types"
)

// availableSlots walks the business slot grid in order and keeps the start
// times the requested service can occupy without a buffered overlap against
// any existing active booking. For today's date, slots that have already
// started are dropped first.
func (uc *UseCase) availableSlots(
	service string,
	requestDate time.Time,
	now time.Time,
	bookings []*domain.Booking,
) ([]types.TimeString, error) {
	currentTime := types.NewTimeString(now)
	today := isSameDay(requestDate, now)

	candidate := domain.SlotRequest{Service: service}
	available := make([]types.TimeString, 0, len(uc.calendar.SlotGrid))

	for _, slotStart := range uc.calendar.SlotGrid {
		if today && slotStart.IsBefore(currentTime) {
			continue
		}

		candidate.StartTime = slotStart

		taken := false
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			conflict, err := uc.conflicts.ConflictsWithInterval(candidate, b.StartTime, b.DurationMinutes)
			if err != nil {
				return nil, err
			}
			if conflict {
				taken = true
				break
			}
		}

		if !taken {
			available = append(available, slotStart)
		}
	}

	return available, nil
}

// isSameDay reports whether two instants fall on the same calendar day.
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date is before today, ignoring the time part.
// Both wall-clock dates are projected into UTC first: request dates parse in
// UTC while the clock runs in the business's zone, and comparing instants
// across the two Locations would shift dates near midnight.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
