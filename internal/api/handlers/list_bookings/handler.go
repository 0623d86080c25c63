package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/premium-barber/booking-service/internal/api/handlers"
	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/internal/service/bookings"
	"github.com/premium-barber/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidFrom   = "invalid from date, expected YYYY-MM-DD"
	msgInvalidTo     = "invalid to date, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid filter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings[?status=&from=&to=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.StartDate = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.EndDate = &to
	}

	list, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
