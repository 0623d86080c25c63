package get_available_slots

import (
	"github.com/premium-barber/booking-service/internal/domain"
	getAvailableSlots "github.com/premium-barber/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	Date    string   `json:"date"`
	Service string   `json:"service"`
	Slots   []string `json:"slots"`
}

// FromUseCaseResponse converts the usecase response to the HTTP shape.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}
	return &AvailableSlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Service: resp.Service,
		Slots:   slots,
	}
}
