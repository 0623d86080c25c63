package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/pkg/ptr"
	"github.com/premium-barber/booking-service/pkg/retry"
	"github.com/premium-barber/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	calls      int
	lastFilter domain.DateBookingsFilter
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time, filter domain.DateBookingsFilter) ([]*domain.Booking, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T, repo *fakeBookingRepo, now time.Time) *UseCase {
	t.Helper()

	catalog, err := domain.NewServiceCatalog(domain.DefaultServices())
	require.NoError(t, err)

	uc := NewUseCase(repo, catalog, domain.DefaultCalendar(), nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	uc.readRetry = retry.Policy{MaxAttempts: 3, Delay: time.Millisecond}
	return uc
}

func activeBooking(service string, start types.TimeString, duration int) *domain.Booking {
	return &domain.Booking{
		ServiceName:     service,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusUpcoming,
	}
}

func TestExecute_EmptyDayReturnsFullGrid(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Service: "Haircut",
	})

	require.NoError(t, err)
	assert.Equal(t, uc.calendar.SlotGrid, resp.Slots)
}

func TestExecute_PastDateHasNoSlots(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Service: "Haircut",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, repo.calls, "past dates must not hit the store")
}

func TestExecute_ClosedWeekdayHasNoSlots(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, now)
	uc.calendar.ClosedWeekdays = []time.Weekday{time.Sunday}

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), // Sunday
		Service: "Haircut",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_BookedSlotIsHidden(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			// 09:00-09:45 plus the 15 minute buffer reaches exactly 10:00,
			// so only the 09:00 slot is blocked.
			activeBooking("Haircut", "09:00", 45),
		},
	}
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Service: "Beard Trim",
	})

	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
	assert.Len(t, resp.Slots, len(uc.calendar.SlotGrid)-1)
}

func TestExecute_LongBookingBlocksSeveralSlots(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			// 10:00-12:00 plus buffer reaches 12:15, blocking 10:00, 11:00
			// and 12:00.
			activeBooking("Premium Package", "10:00", 120),
		},
	}
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Service: "Haircut",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("11:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("12:00"))
	assert.Contains(t, resp.Slots, types.TimeString("14:00"))
}

func TestExecute_TodayDropsElapsedSlots(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    now,
		Service: "Haircut",
	})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00", "15:00", "16:00", "17:00"}, resp.Slots)
}

func TestExecute_SlotsAreSubsetOfGrid(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			activeBooking("Haircut", "09:00", 45),
			activeBooking("Head Massage", "15:00", 30),
		},
	}
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Service: "Hot Shave",
	})

	require.NoError(t, err)
	grid := make(map[types.TimeString]bool)
	for _, s := range uc.calendar.SlotGrid {
		grid[s] = true
	}
	for _, s := range resp.Slots {
		assert.True(t, grid[s], "slot %s is not on the business grid", s)
	}
}

func TestExecute_CancelledBookingsDoNotBlock(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	cancelled := activeBooking("Haircut", "09:00", 45)
	cancelled.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{bookings: []*domain.Booking{cancelled}}
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Service: "Haircut",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
}

func TestExecute_StoreFailureIsNotAnEmptyDay(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Service: "Haircut",
	})

	require.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Nil(t, resp)
	assert.Equal(t, 3, repo.calls, "reads should be retried before giving up")
}

func TestExecute_ExcludeBookingIDReachesTheStore(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date:             time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Service:          "Haircut",
		ExcludeBookingID: ptr.Ptr(int64(42)),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.ExcludeID)
	assert.Equal(t, int64(42), *repo.lastFilter.ExcludeID)
}

func TestExecute_UnknownServiceIsRejected(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Service: "Foot Massage",
	})

	require.ErrorIs(t, err, ErrServiceNotFound)
	assert.Equal(t, 0, repo.calls)
}
