package domain

import (
	"fmt"
	"time"

	"github.com/premium-barber/booking-service/pkg/types"
)

// BusinessCalendar is the shop's static booking policy: operating hours, the
// grid of bookable start times, closed weekdays, the idle buffer required
// between appointments and the advance-booking horizon. It is read-only after
// Validate passes at startup.
type BusinessCalendar struct {
	OpenTime       types.TimeString
	CloseTime      types.TimeString
	SlotGrid       []types.TimeString
	ClosedWeekdays []time.Weekday
	BufferMinutes  int
	MaxAdvanceDays int
}

// Validate checks the calendar invariants once at process start:
// every grid entry lies within [OpenTime, CloseTime), the grid is strictly
// ascending with no duplicates, and the policy numbers are in range.
func (c *BusinessCalendar) Validate() error {
	if err := c.OpenTime.Validate(); err != nil {
		return fmt.Errorf("calendar: invalid open time: %w", err)
	}
	if err := c.CloseTime.Validate(); err != nil {
		return fmt.Errorf("calendar: invalid close time: %w", err)
	}
	if !c.OpenTime.IsBefore(c.CloseTime) {
		return fmt.Errorf("calendar: open time %s is not before close time %s", c.OpenTime, c.CloseTime)
	}

	if len(c.SlotGrid) == 0 {
		return fmt.Errorf("calendar: empty slot grid")
	}
	for i, slot := range c.SlotGrid {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("calendar: invalid slot %q: %w", slot, err)
		}
		if !c.WithinBusinessHours(slot) {
			return fmt.Errorf("calendar: slot %s outside business hours [%s, %s)", slot, c.OpenTime, c.CloseTime)
		}
		if i > 0 && !c.SlotGrid[i-1].IsBefore(slot) {
			return fmt.Errorf("calendar: slot grid not strictly ascending at %s", slot)
		}
	}

	for _, day := range c.ClosedWeekdays {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("calendar: invalid closed weekday %d", day)
		}
	}

	if c.BufferMinutes < MinBufferMinutes || c.BufferMinutes > MaxBufferMinutes {
		return fmt.Errorf("calendar: buffer minutes %d out of range", c.BufferMinutes)
	}
	if c.MaxAdvanceDays < MinAdvanceBookingDays || c.MaxAdvanceDays > MaxAdvanceBookingDays {
		return fmt.Errorf("calendar: max advance days %d out of range", c.MaxAdvanceDays)
	}

	return nil
}

// WithinBusinessHours reports whether t lies in [OpenTime, CloseTime).
// The close boundary is exclusive: a booking exactly at close time is invalid.
func (c *BusinessCalendar) WithinBusinessHours(t types.TimeString) bool {
	return !t.IsBefore(c.OpenTime) && t.IsBefore(c.CloseTime)
}

// IsClosedOn reports whether the shop is closed on the given weekday.
func (c *BusinessCalendar) IsClosedOn(day time.Weekday) bool {
	for _, closed := range c.ClosedWeekdays {
		if closed == day {
			return true
		}
	}
	return false
}

// DefaultCalendar returns the shop's standard policy, used when config.toml
// does not override the calendar: open 09:00-18:00 every day, hourly slots
// with a lunch gap at 13:00, 15 minute buffer, 30 day horizon.
func DefaultCalendar() BusinessCalendar {
	return BusinessCalendar{
		OpenTime:  "09:00",
		CloseTime: "18:00",
		SlotGrid: []types.TimeString{
			"09:00", "10:00", "11:00", "12:00",
			"14:00", "15:00", "16:00", "17:00",
		},
		ClosedWeekdays: nil,
		BufferMinutes:  15,
		MaxAdvanceDays: 30,
	}
}
