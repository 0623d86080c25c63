package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premium-barber/booking-service/pkg/types"
)

func TestDefaultCalendarIsValid(t *testing.T) {
	c := DefaultCalendar()
	require.NoError(t, c.Validate())
}

func TestWithinBusinessHours_Boundaries(t *testing.T) {
	c := DefaultCalendar()

	assert.True(t, c.WithinBusinessHours("09:00"), "opening time is bookable")
	assert.True(t, c.WithinBusinessHours("17:59"))
	assert.False(t, c.WithinBusinessHours("18:00"), "closing time is not bookable")
	assert.False(t, c.WithinBusinessHours("08:59"))
}

func TestIsClosedOn(t *testing.T) {
	c := DefaultCalendar()
	assert.False(t, c.IsClosedOn(time.Sunday), "open every day by default")

	c.ClosedWeekdays = []time.Weekday{time.Sunday, time.Monday}
	assert.True(t, c.IsClosedOn(time.Sunday))
	assert.True(t, c.IsClosedOn(time.Monday))
	assert.False(t, c.IsClosedOn(time.Tuesday))
}

func TestValidate_RejectsBrokenCalendars(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BusinessCalendar)
	}{
		{"open after close", func(c *BusinessCalendar) { c.OpenTime = "19:00" }},
		{"empty grid", func(c *BusinessCalendar) { c.SlotGrid = nil }},
		{"slot before opening", func(c *BusinessCalendar) {
			c.SlotGrid = append([]types.TimeString{"08:00"}, c.SlotGrid...)
		}},
		{"slot at close time", func(c *BusinessCalendar) {
			c.SlotGrid = append(c.SlotGrid, "18:00")
		}},
		{"duplicate slot", func(c *BusinessCalendar) {
			c.SlotGrid = append(c.SlotGrid, "17:00")
		}},
		{"descending grid", func(c *BusinessCalendar) {
			c.SlotGrid = []types.TimeString{"10:00", "09:00"}
		}},
		{"negative buffer", func(c *BusinessCalendar) { c.BufferMinutes = -1 }},
		{"zero horizon", func(c *BusinessCalendar) { c.MaxAdvanceDays = 0 }},
		{"invalid weekday", func(c *BusinessCalendar) { c.ClosedWeekdays = []time.Weekday{7} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultCalendar()
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
