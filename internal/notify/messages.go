// Package notify renders the customer-facing SMS texts. The wording is part
// of the service's output contract; change it deliberately.
package notify

import "fmt"

// Templates renders single-line messages naming the business.
type Templates struct {
	BusinessName string
}

// NewTemplates builds the message templates for the given business name.
func NewTemplates(businessName string) *Templates {
	return &Templates{BusinessName: businessName}
}

// Confirmation is sent right after a booking is created.
func (t *Templates) Confirmation(service, date, time string) string {
	return fmt.Sprintf("Your %s appointment is confirmed for %s at %s. Thank you for choosing %s.",
		service, date, time, t.BusinessName)
}

// Reminder is the pre-appointment reminder.
func (t *Templates) Reminder(service, date, time string) string {
	return fmt.Sprintf("REMINDER: Your appointment for %s is scheduled for %s at %s. Thank you for choosing %s.",
		service, date, time, t.BusinessName)
}

// Cancellation is sent when an appointment is cancelled.
func (t *Templates) Cancellation(service, date, time string) string {
	return fmt.Sprintf("Your %s appointment on %s at %s has been cancelled. We hope to see you again at %s.",
		service, date, time, t.BusinessName)
}
