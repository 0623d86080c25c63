package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premium-barber/booking-service/internal/domain"
	bookingstore "github.com/premium-barber/booking-service/internal/infra/storage/booking"
	"github.com/premium-barber/booking-service/internal/integrations/smsgateway"
	"github.com/premium-barber/booking-service/internal/notify"
	"github.com/premium-barber/booking-service/internal/usecase/validate_booking"
)

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
	calls   int
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	stored := *b
	stored.ID = 101
	stored.CreatedAt = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	f.created = &stored
	return &stored, nil
}

type fakeValidator struct {
	result  *validate_booking.Result
	results []*validate_booking.Result // consumed one per call when set
	err     error
	calls   int
}

func (f *fakeValidator) Execute(_ context.Context, _ *validate_booking.Request) (*validate_booking.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) > 0 {
		result := f.results[0]
		f.results = f.results[1:]
		return result, nil
	}
	return f.result, nil
}

// passthroughTxManager runs the function without a real transaction; the
// flow's transactional behavior itself is the tx manager's concern.
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// rerunningTxManager runs the function twice, the way the real managers
// re-run it when the first commit aborts with a serialization failure.
type rerunningTxManager struct {
	calls int
}

func (m *rerunningTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return fn(ctx)
}

type fakeSMSClient struct {
	report *smsgateway.SendReport
	err    error
	calls  int
	lastTo string
}

func (f *fakeSMSClient) Send(_ context.Context, to, _ string) (*smsgateway.SendReport, error) {
	f.calls++
	f.lastTo = to
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc        *UseCase
	repo      *fakeBookingRepo
	validator *fakeValidator
	tx        *passthroughTxManager
	sms       *fakeSMSClient
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog, err := domain.NewServiceCatalog(domain.DefaultServices())
	require.NoError(t, err)

	f := &fixture{
		repo:      &fakeBookingRepo{},
		validator: &fakeValidator{result: &validate_booking.Result{Valid: true}},
		tx:        &passthroughTxManager{},
		sms:       &fakeSMSClient{report: &smsgateway.SendReport{Success: true, Message: "SMS sent successfully"}},
	}

	f.uc = NewUseCase(
		f.repo,
		f.validator,
		f.tx,
		f.sms,
		notify.NewTemplates("Premium Cuts & Spa"),
		catalog,
		domain.DefaultCalendar(),
		nopLogger{},
	)
	f.uc.timeProvider = &fixedClock{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:            5,
		Service:           "Haircut",
		Date:              "2026-03-03",
		StartTime:         "10:00",
		Phone:             "0712345678",
		ReminderRequested: false,
	}
}

func TestExecute_CreatesBookingWithSnapshot(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Nil(t, resp.FieldErrors)
	assert.Nil(t, resp.Rejection)

	assert.Equal(t, int64(101), resp.Booking.ID)
	assert.Equal(t, "Haircut", resp.Booking.ServiceName)
	assert.Equal(t, 45, resp.Booking.DurationMinutes)
	assert.Equal(t, int64(390000), resp.Booking.PriceMinorUnits)
	assert.Equal(t, string(domain.StatusUpcoming), resp.Booking.Status)
	assert.Equal(t, "+254712345678", resp.Booking.CustomerPhone, "phone is stored in canonical form")

	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.validator.calls)
	assert.Equal(t, 1, f.repo.calls)
	assert.Equal(t, 0, f.sms.calls, "no SMS without a reminder request")
}

func TestExecute_FormFailureShortCircuits(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Phone = ""
	req.Service = "Foot Massage"

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.FieldErrors)
	assert.Nil(t, resp.Booking)
	assert.Equal(t, "Phone number is required", resp.FieldErrors[fieldPhone])
	assert.Equal(t, "Please select a valid service", resp.FieldErrors[fieldService])

	assert.Equal(t, 0, f.validator.calls, "the policy validator must not run on a bad form")
	assert.Equal(t, 0, f.tx.calls)
	assert.Equal(t, 0, f.repo.calls)
}

func TestExecute_OffGridTimeIsAFormError(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.StartTime = "10:30"

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.FieldErrors)
	assert.Equal(t, "Please select an available time slot", resp.FieldErrors[fieldTime])
}

func TestExecute_ValidatorRejectionIsReturned(t *testing.T) {
	f := newFixture(t)
	f.validator.result = &validate_booking.Result{
		Valid:   false,
		Message: "This time slot conflicts with an existing Haircut appointment. Please choose a different time.",
		Conflict: &validate_booking.ConflictingBooking{
			ID: 7, ServiceName: "Haircut", StartTime: "10:00", DurationMinutes: 45,
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Rejection)
	assert.Nil(t, resp.Booking)
	assert.Contains(t, resp.Rejection.Message, "conflicts with an existing Haircut appointment")
	require.NotNil(t, resp.Rejection.Conflict)
	assert.Equal(t, int64(7), resp.Rejection.Conflict.ID)
	assert.Equal(t, 0, f.repo.calls, "a rejected attempt writes nothing")
}

func TestExecute_LateConflictAtInsertIsARejection(t *testing.T) {
	f := newFixture(t)
	f.repo.err = bookingstore.ErrSlotTaken

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err, "losing the slot race is a normal outcome")
	require.NotNil(t, resp.Rejection)
	assert.Nil(t, resp.Booking)
	assert.Equal(t, slotTakenMessage, resp.Rejection.Message)
}

func TestExecute_SerializationRerunDiscardsStaleVerdict(t *testing.T) {
	// Attempt 1 ends in a conflict verdict but its commit is aborted, so the
	// manager re-runs the function; attempt 2 validates clean and inserts.
	// Only the committed attempt's outcome may reach the customer.
	f := newFixture(t)
	f.uc.txManager = &rerunningTxManager{}
	f.validator.results = []*validate_booking.Result{
		{
			Valid:   false,
			Message: "This time slot conflicts with an existing Haircut appointment. Please choose a different time.",
		},
		{Valid: true},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Booking, "the committed insert wins over the aborted attempt's verdict")
	assert.Nil(t, resp.Rejection)
	assert.Equal(t, int64(101), resp.Booking.ID)
	assert.Equal(t, 2, f.validator.calls)
	assert.Equal(t, 1, f.repo.calls)
}

func TestExecute_AvailabilityUnknownPropagates(t *testing.T) {
	f := newFixture(t)
	f.validator.err = validate_booking.ErrAvailabilityUnknown

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Nil(t, resp)
	assert.Equal(t, 0, f.repo.calls)
}

func TestExecute_ReminderSendsConfirmationSMS(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.ReminderRequested = true

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.SMS)
	assert.True(t, resp.SMS.Requested)
	assert.True(t, resp.SMS.Sent)
	assert.Equal(t, 1, f.sms.calls)
	assert.Equal(t, "+254712345678", f.sms.lastTo)
}

func TestExecute_SMSFailureDoesNotUndoTheBooking(t *testing.T) {
	f := newFixture(t)
	f.sms.err = errors.New("gateway timeout")

	req := validRequest()
	req.ReminderRequested = true

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.Booking, "the booking stands even when the SMS fails")
	require.NotNil(t, resp.SMS)
	assert.True(t, resp.SMS.Requested)
	assert.False(t, resp.SMS.Sent)
	assert.Equal(t, "Failed to send SMS", resp.SMS.Message)
}

func TestExecute_InvalidUserIDIsAnError(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.UserID = 0

	resp, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}
