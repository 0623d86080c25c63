package create_booking

import (
	"fmt"
	"time"

	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/internal/forms"
	"github.com/premium-barber/booking-service/pkg/types"
)

const (
	fieldService = "service"
	fieldDate    = "date"
	fieldTime    = "time"
	fieldPhone   = "phone"
)

// bookingForm builds the field validator for the submission form. The date
// rules depend on the clock, so the form is built per request with the
// current time captured.
func bookingForm(catalog *domain.ServiceCatalog, calendar domain.BusinessCalendar, now time.Time) *forms.Validator {
	return forms.NewValidator(
		forms.NewField(fieldService, "Service",
			forms.Required(),
			forms.Custom(func(value string) string {
				if !catalog.Contains(value) {
					return "Please select a valid service"
				}
				return ""
			}),
		),
		forms.NewField(fieldDate, "Date",
			forms.Required(),
			forms.Custom(dateRule(calendar, now)),
		),
		forms.NewField(fieldTime, "Time",
			forms.Required(),
			forms.Custom(func(value string) string {
				for _, slot := range calendar.SlotGrid {
					if types.TimeString(value) == slot {
						return ""
					}
				}
				return "Please select an available time slot"
			}),
		),
		forms.NewField(fieldPhone, "Phone number",
			forms.Required(),
			forms.Phone(),
		),
	)
}

func dateRule(calendar domain.BusinessCalendar, now time.Time) func(string) string {
	return func(value string) string {
		date, err := time.Parse(domain.DateFormat, value)
		if err != nil {
			return "Please enter a valid date"
		}

		dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		if dateOnly.Before(nowOnly) {
			return "Cannot book appointments in the past"
		}
		if dateOnly.After(nowOnly.AddDate(0, 0, calendar.MaxAdvanceDays)) {
			return fmt.Sprintf("Bookings can only be made up to %d days in advance", calendar.MaxAdvanceDays)
		}
		return ""
	}
}
