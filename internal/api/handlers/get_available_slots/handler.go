package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/premium-barber/booking-service/internal/api/handlers"
	"github.com/premium-barber/booking-service/internal/domain"
	getAvailableSlots "github.com/premium-barber/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "date query parameter is required (YYYY-MM-DD)"
	msgInvalidDate         = "invalid date, expected YYYY-MM-DD"
	msgMissingService      = "service query parameter is required"
	msgInvalidExcludeID    = "invalid excludeBookingId"
	msgServiceNotFound     = "service not found"
	msgAvailabilityUnknown = "Unable to verify booking availability. Please try again."
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD&service=NAME[&excludeBookingId=N]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawDate := query.Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	service := query.Get("service")
	if service == "" {
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	req := &getAvailableSlots.Request{Date: date, Service: service}

	if raw := query.Get("excludeBookingId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		req.ExcludeBookingID = &id
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: %q", service)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrAvailabilityUnknown):
			h.logger.Error("GET /available-slots - Availability unknown: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAvailabilityUnknown)

		default:
			h.logger.Error("GET /available-slots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
