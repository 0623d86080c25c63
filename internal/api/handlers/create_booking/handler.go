package create_booking

import (
	"errors"
	"net/http"

	"github.com/premium-barber/booking-service/internal/api/handlers"
	"github.com/premium-barber/booking-service/internal/api/middleware"
	createBooking "github.com/premium-barber/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgMissingUserID       = "missing user id"
	msgAvailabilityUnknown = "Unable to verify booking availability. Please try again."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrAvailabilityUnknown):
			h.logger.Error("POST /bookings - Availability unknown: user_id=%d: %v", userID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAvailabilityUnknown)

		default:
			h.logger.Error("POST /bookings - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	switch {
	case result.FieldErrors != nil:
		h.logger.Warn("POST /bookings - Form rejected: user_id=%d, fields=%v", userID, result.FieldErrors)
		handlers.RespondJSON(w, http.StatusBadRequest, FieldErrorsResponse{Errors: result.FieldErrors})

	case result.Rejection != nil:
		h.logger.Warn("POST /bookings - Rejected: user_id=%d: %s", userID, result.Rejection.Message)
		handlers.RespondJSON(w, http.StatusConflict, FromRejection(result.Rejection))

	default:
		h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d",
			result.Booking.ID, userID)
		handlers.RespondJSON(w, http.StatusCreated, FromCreatedBooking(result))
	}
}
