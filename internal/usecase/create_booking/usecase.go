package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/premium-barber/booking-service/internal/domain"
	bookingstore "github.com/premium-barber/booking-service/internal/infra/storage/booking"
	"github.com/premium-barber/booking-service/internal/usecase/validate_booking"
	"github.com/premium-barber/booking-service/pkg/types"
)

// slotTakenMessage is shown when the insert itself hits the active-slot
// unique index: a concurrent submission won the slot between our check and
// our write. The customer sees the same kind of refusal as a validator
// conflict.
const slotTakenMessage = "This time slot conflicts with an existing appointment. Please choose a different time."

// UseCase is the booking submission flow: form validation, then policy
// validation and insert inside one serializable transaction, then an
// optional confirmation SMS.
type UseCase struct {
	bookingRepo  BookingRepository
	validator    BookingValidator
	txManager    TransactionManager
	smsClient    SMSSender
	messages     MessageRenderer
	catalog      *domain.ServiceCatalog
	calendar     domain.BusinessCalendar
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the submission flow.
func NewUseCase(
	bookingRepo BookingRepository,
	validator BookingValidator,
	txManager TransactionManager,
	smsClient SMSSender,
	messages MessageRenderer,
	catalog *domain.ServiceCatalog,
	calendar domain.BusinessCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		validator:    validator,
		txManager:    txManager,
		smsClient:    smsClient,
		messages:     messages,
		catalog:      catalog,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the submission flow. Form failures and policy rejections are
// normal outcomes carried in the Response; errors mean no verdict was
// reached. The confirmation SMS runs after the transaction commits and its
// failure never undoes the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%q, date=%s, time=%s",
		req.UserID, req.Service, req.Date, req.StartTime)

	// 1. Basic input.
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Form validation. A rejected form never reaches the policy
	// validator or the store.
	formResult := bookingForm(uc.catalog, uc.calendar, now).Validate(map[string]string{
		fieldService: req.Service,
		fieldDate:    req.Date,
		fieldTime:    req.StartTime,
		fieldPhone:   req.Phone,
	})
	if !formResult.IsValid {
		uc.logger.Warn("CreateBooking: form rejected for user=%d: %v", req.UserID, formResult.Errors)
		return &Response{FieldErrors: formResult.Errors}, nil
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: parse date after validation: %v", ErrInternal, err)
	}
	startTime := types.TimeString(req.StartTime)
	phone := formResult.FormattedValues[fieldPhone]

	def, ok := uc.catalog.Lookup(req.Service)
	if !ok {
		return nil, fmt.Errorf("%w: service %q passed the form but is not in the catalog", ErrInternal, req.Service)
	}

	// 3. Policy check and insert share one serializable transaction, so the
	// rows the validator saw cannot change under the insert.
	var created *domain.Booking
	var rejection *Rejection

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// The manager re-runs this function after a commit-time
		// serialization failure; only the committed attempt's outcome may
		// survive.
		created = nil
		rejection = nil

		verdict, err := uc.validator.Execute(txCtx, &validate_booking.Request{
			Service:   req.Service,
			Date:      date,
			StartTime: startTime,
		})
		if err != nil {
			if errors.Is(err, validate_booking.ErrAvailabilityUnknown) {
				return fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
			}
			return fmt.Errorf("%w: validate booking: %v", ErrInternal, err)
		}

		if !verdict.Valid {
			rejection = &Rejection{Message: verdict.Message, Conflict: verdict.Conflict}
			return nil
		}

		booking := &domain.Booking{
			UserID:            req.UserID,
			ServiceName:       def.Name,
			BookingDate:       date,
			StartTime:         startTime,
			DurationMinutes:   def.DurationMinutes,
			Status:            domain.StatusUpcoming,
			CustomerPhone:     phone,
			ReminderRequested: req.ReminderRequested,
			PriceMinorUnits:   def.PriceMinorUnits,
		}

		result, err := uc.bookingRepo.Create(txCtx, booking)
		if errors.Is(err, bookingstore.ErrSlotTaken) {
			rejection = &Rejection{Message: slotTakenMessage}
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	if err != nil {
		uc.logger.Error("CreateBooking: transaction failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	if rejection != nil {
		uc.logger.Warn("CreateBooking: rejected for user=%d: %s", req.UserID, rejection.Message)
		return &Response{Rejection: rejection}, nil
	}

	uc.logger.Info("CreateBooking: created booking id=%d for user=%d", created.ID, created.UserID)

	resp := &Response{Booking: toCreatedBooking(created)}
	if req.ReminderRequested {
		resp.SMS = uc.sendConfirmation(ctx, created)
	}
	return resp, nil
}

// sendConfirmation runs after commit. The booking already exists, so a send
// failure is reported, never escalated.
func (uc *UseCase) sendConfirmation(ctx context.Context, b *domain.Booking) *SMSStatus {
	message := uc.messages.Confirmation(
		b.ServiceName,
		b.BookingDate.Format(domain.DateFormat),
		b.StartTime.String(),
	)

	report, err := uc.smsClient.Send(ctx, b.CustomerPhone, message)
	if err != nil {
		uc.logger.Error("CreateBooking: confirmation SMS failed for booking id=%d: %v", b.ID, err)
		return &SMSStatus{Requested: true, Sent: false, Message: "Failed to send SMS"}
	}

	if !report.Success {
		uc.logger.Warn("CreateBooking: confirmation SMS not delivered for booking id=%d: %s", b.ID, report.Message)
	}
	return &SMSStatus{Requested: true, Sent: report.Success, Message: report.Message}
}

func toCreatedBooking(b *domain.Booking) *CreatedBooking {
	return &CreatedBooking{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceName:     b.ServiceName,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		CustomerPhone:   b.CustomerPhone,
		PriceMinorUnits: b.PriceMinorUnits,
		CreatedAt:       b.CreatedAt,
	}
}
