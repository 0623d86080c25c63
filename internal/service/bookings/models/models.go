package models

import (
	"fmt"
	"time"

	"github.com/premium-barber/booking-service/internal/domain"
)

// BookingResponse is the API-facing representation of a booking.
type BookingResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	ServiceName       string    `json:"serviceName"`
	BookingDate       string    `json:"bookingDate"` // "YYYY-MM-DD"
	StartTime         string    `json:"startTime"`   // "HH:MM"
	DurationMinutes   int       `json:"durationMinutes"`
	Status            string    `json:"status"`
	CustomerPhone     string    `json:"customerPhone"`
	ReminderRequested bool      `json:"reminderRequested"`
	PriceMinorUnits   int64     `json:"priceMinorUnits"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BookingListResponse wraps a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// GetUserBookingsRequest asks for one customer's booking history.
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
}

// ListBookingsRequest narrows the admin booking listing.
type ListBookingsRequest struct {
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateStatusRequest asks for a status transition.
type UpdateStatusRequest struct {
	Status string
}

// ToDomainFilter converts the admin listing request.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return domain.BookingsFilter{}, fmt.Errorf("unknown status %q", *r.Status)
		}
		filter.Status = &status
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return domain.BookingsFilter{}, fmt.Errorf("end date is before start date")
	}

	return filter, nil
}

// FromDomainBooking converts a domain booking to the response shape.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		UserID:            b.UserID,
		ServiceName:       b.ServiceName,
		BookingDate:       b.BookingDate.Format(domain.DateFormat),
		StartTime:         b.StartTime.String(),
		DurationMinutes:   b.DurationMinutes,
		Status:            string(b.Status),
		CustomerPhone:     b.CustomerPhone,
		ReminderRequested: b.ReminderRequested,
		PriceMinorUnits:   b.PriceMinorUnits,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
