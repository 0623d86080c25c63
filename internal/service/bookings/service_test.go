package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premium-barber/booking-service/internal/domain"
	bookingRepo "github.com/premium-barber/booking-service/internal/infra/storage/booking"
	"github.com/premium-barber/booking-service/internal/service/bookings/models"
	"github.com/premium-barber/booking-service/pkg/ptr"
)

type fakeRepo struct {
	byID        map[int64]*domain.Booking
	byUser      []*domain.Booking
	listed      []*domain.Booking
	updateErr   error
	lastUpdate  domain.BookingStatus
	updateCalls int
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byUser, nil
}

func (f *fakeRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.listed, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updateCalls++
	f.lastUpdate = status
	if f.updateErr != nil {
		return f.updateErr
	}
	if b, ok := f.byID[id]; ok {
		b.Status = status
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id, userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		UserID:          userID,
		ServiceName:     "Haircut",
		BookingDate:     time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 45,
		Status:          status,
		CustomerPhone:   "+254712345678",
		PriceMinorUnits: 390000,
	}
}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, nopLogger{})
}

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusUpcoming)}}
	svc := newService(repo)

	resp, err := svc.GetByID(context.Background(), 1, 5, false)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-03-03", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_StrangerIsDenied(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusUpcoming)}}
	svc := newService(repo)

	_, err := svc.GetByID(context.Background(), 1, 9, false)

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesAnyBooking(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusUpcoming)}}
	svc := newService(repo)

	resp, err := svc.GetByID(context.Background(), 1, 9, true)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.UserID)
}

func TestGetByID_MissingBooking(t *testing.T) {
	svc := newService(&fakeRepo{byID: map[int64]*domain.Booking{}})

	_, err := svc.GetByID(context.Background(), 404, 5, false)

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_OwnHistory(t *testing.T) {
	repo := &fakeRepo{byUser: []*domain.Booking{
		testBooking(1, 5, domain.StatusUpcoming),
		testBooking(2, 5, domain.StatusCompleted),
	}}
	svc := newService(repo)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 5}, 5, false)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetUserBookings_OtherCustomersHistoryIsDenied(t *testing.T) {
	svc := newService(&fakeRepo{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 5}, 9, false)

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_UnknownStatusFilter(t *testing.T) {
	svc := newService(&fakeRepo{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 5,
		Status: ptr.Ptr("archived"),
	}, 5, false)

	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListBookings_RejectsInvertedDateRange(t *testing.T) {
	svc := newService(&fakeRepo{})

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ListBookings(context.Background(), &models.ListBookingsRequest{
		StartDate: &from,
		EndDate:   &to,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_CompletesAnUpcomingBooking(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusUpcoming)}}
	svc := newService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.lastUpdate)
}

func TestUpdateStatus_ReinstatesACancelledBooking(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusCancelled)}}
	svc := newService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "upcoming"})

	require.NoError(t, err)
	assert.Equal(t, "upcoming", resp.Status)
}

func TestUpdateStatus_ReinstateFailsWhenSlotWasTaken(t *testing.T) {
	repo := &fakeRepo{
		byID:      map[int64]*domain.Booking{1: testBooking(1, 5, domain.StatusCancelled)},
		updateErr: bookingRepo.ErrSlotTaken,
	}
	svc := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "upcoming"})

	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdateStatus_RejectsForbiddenTransitions(t *testing.T) {
	cases := []struct {
		name   string
		from   domain.BookingStatus
		target string
	}{
		{"completed cannot be cancelled", domain.StatusCompleted, "cancelled"},
		{"completed cannot be reinstated", domain.StatusCompleted, "upcoming"},
		{"cancelled cannot complete", domain.StatusCancelled, "completed"},
		{"upcoming cannot go back to confirmed", domain.StatusUpcoming, "confirmed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{byID: map[int64]*domain.Booking{1: testBooking(1, 5, tc.from)}}
			svc := newService(repo)

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tc.target})

			require.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, 0, repo.updateCalls)
		})
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := newService(&fakeRepo{byID: map[int64]*domain.Booking{}})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "paused"})

	require.ErrorIs(t, err, ErrInvalidStatus)
}
