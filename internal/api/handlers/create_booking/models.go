package create_booking

import (
	"time"

	"github.com/premium-barber/booking-service/internal/domain"
	createBooking "github.com/premium-barber/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request model. The fields mirror the
// customer-facing booking form.
type CreateBookingRequest struct {
	Service           string `json:"service"`
	Date              string `json:"date"` // "2026-03-14"
	Time              string `json:"time"` // "10:00"
	Phone             string `json:"phone"`
	ReminderRequested bool   `json:"reminderRequested"`
}

// BookingResponse is the HTTP success model.
type BookingResponse struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"userId"`
	ServiceName     string     `json:"serviceName"`
	BookingDate     string     `json:"bookingDate"`
	StartTime       string     `json:"startTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
	CustomerPhone   string     `json:"customerPhone"`
	PriceMinorUnits int64      `json:"priceMinorUnits"`
	CreatedAt       string     `json:"createdAt"`
	SMS             *SMSStatus `json:"sms,omitempty"`
}

// SMSStatus reports the confirmation message attempt.
type SMSStatus struct {
	Requested bool   `json:"requested"`
	Sent      bool   `json:"sent"`
	Message   string `json:"message"`
}

// FieldErrorsResponse carries per-field form errors.
type FieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

// ConflictResponse carries a policy rejection.
type ConflictResponse struct {
	Error    string           `json:"error"`
	Conflict *ConflictDetails `json:"conflict,omitempty"`
}

// ConflictDetails identifies the appointment that blocks the attempt.
type ConflictDetails struct {
	ID              int64  `json:"id"`
	ServiceName     string `json:"serviceName"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest converts the HTTP request to the usecase model.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:            userID,
		Service:           r.Service,
		Date:              r.Date,
		StartTime:         r.Time,
		Phone:             r.Phone,
		ReminderRequested: r.ReminderRequested,
	}
}

// FromCreatedBooking converts the usecase success to the HTTP model.
func FromCreatedBooking(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking
	out := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceName:     b.ServiceName,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		CustomerPhone:   b.CustomerPhone,
		PriceMinorUnits: b.PriceMinorUnits,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if resp.SMS != nil {
		out.SMS = &SMSStatus{
			Requested: resp.SMS.Requested,
			Sent:      resp.SMS.Sent,
			Message:   resp.SMS.Message,
		}
	}
	return out
}

// FromRejection converts a policy rejection to the HTTP model.
func FromRejection(rejection *createBooking.Rejection) *ConflictResponse {
	out := &ConflictResponse{Error: rejection.Message}
	if rejection.Conflict != nil {
		out.Conflict = &ConflictDetails{
			ID:              rejection.Conflict.ID,
			ServiceName:     rejection.Conflict.ServiceName,
			StartTime:       rejection.Conflict.StartTime.String(),
			DurationMinutes: rejection.Conflict.DurationMinutes,
		}
	}
	return out
}
