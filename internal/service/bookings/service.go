package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/premium-barber/booking-service/internal/domain"
	bookingRepo "github.com/premium-barber/booking-service/internal/infra/storage/booking"
	"github.com/premium-barber/booking-service/internal/service/bookings/models"
)

// Service handles booking reads and status transitions. Submissions go
// through the create_booking usecase; everything after creation lands here.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking. Customers see only their own bookings; admins
// see all of them.
func (s *Service) GetByID(ctx context.Context, id, requesterID int64, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, requesterID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != requesterID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings fetches a customer's booking history, optionally filtered
// by status. Customers see only their own history; admins see anyone's.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest, requesterID int64, isAdmin bool) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", req.UserID)

	if req.UserID != requesterID && !isAdmin {
		s.logger.Warn("GetUserBookings: access denied for user=%d to history of user=%d", requesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserBookings: invalid status=%q for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, *req.Status)
		}
		status = &parsed
	}

	list, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(list), req.UserID)
	return models.FromDomainBookingList(list), nil
}

// ListBookings fetches bookings across all customers with optional status and
// date range filters. Admin-only; the role check happens at the API boundary.
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: fetching admin booking list")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(list))
	return models.FromDomainBookingList(list), nil
}

// UpdateStatus moves a booking to a new status, enforcing the transition
// rules: active bookings can complete or cancel, cancelled ones can be
// reinstated. Reinstating fails with ErrSlotTaken when another active booking
// took the slot in the meantime.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d -> %q", id, req.Status)

	target, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, req.Status)
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(target) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, target, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, target); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("UpdateStatus: cannot reinstate booking id=%d, slot taken", id)
			return nil, ErrSlotTaken
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	booking.Status = target
	s.logger.Info("UpdateStatus: booking id=%d is now %s", id, target)
	return models.FromDomainBooking(booking), nil
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}
