package booking

import (
	"context"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/services/core/session"
	"medportal-service/internal/app/services/core/slots"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"
	"medportal-service/internal/pkg/dto/responses"
	"medportal-service/internal/pkg/utils"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	Store          *session.Store[*Form]
	HospitalClient contracts.HospitalClient
	DoctorClient   contracts.DoctorClient
	SlotClient     contracts.SlotClient
	Booker         Booker
	InternalConfig *config.InternalConfig
	Location       *time.Location
	Log            *zap.Logger
	now            func() time.Time
}

func NewBookingUsecase(
	store *session.Store[*Form],
	hospitalClient contracts.HospitalClient,
	doctorClient contracts.DoctorClient,
	slotClient contracts.SlotClient,
	booker Booker,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		Store:          store,
		HospitalClient: hospitalClient,
		DoctorClient:   doctorClient,
		SlotClient:     slotClient,
		Booker:         booker,
		InternalConfig: internalConfig,
		Location:       utils.LoadLocation(internalConfig.App.Timezone),
		Log:            logger,
		now:            time.Now,
	}
}

// reservationBackOff bounds the retries of the slot reservation that follows
// a created appointment.
func (uc *bookingUsecase) reservationBackOff() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Duration(uc.InternalConfig.Booking.ReservationInitialBackoffMs) * time.Millisecond
	policy.MaxElapsedTime = 0
	retries := uc.InternalConfig.Booking.ReservationMaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithMaxRetries(policy, uint64(retries))
}

func (uc *bookingUsecase) OpenBookingForm(ctx context.Context, request *requests.OpenBookingForm) (*responses.SessionOpened, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.OpenBookingForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	today, _ := utils.ResolveDate("", uc.now(), uc.Location)
	board := slots.NewBoard(uc.SlotClient, uc.reservationBackOff, uc.Log)
	form := NewForm(request.PatientID, today, uc.HospitalClient, uc.DoctorClient, uc.Booker, board, uc.Log)
	sessionID := uc.Store.Open(form)

	err := uc.withSession(ctx, sessionID, func(ctx context.Context, form *Form) error {
		return form.LoadHospitals(ctx)
	})
	if err != nil {
		uc.Store.Close(sessionID)
		uc.Log.Error("bookingUsecase.OpenBookingForm error loading hospitals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.OpenBookingForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return &responses.SessionOpened{
		SessionID: sessionID,
		State:     form.Snapshot(),
	}, nil
}

func (uc *bookingUsecase) GetBookingForm(ctx context.Context, sessionID string) (*responses.BookingForm, error) {
	form, _, err := uc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return form.Snapshot(), nil
}

func (uc *bookingUsecase) SelectHospital(ctx context.Context, sessionID string, request *requests.SelectHospital) (*responses.BookingForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SelectHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingHospitalIDKey, request.HospitalID),
	)

	return uc.update(ctx, sessionID, func(ctx context.Context, form *Form) error {
		return form.SelectHospital(ctx, request.HospitalID)
	})
}

func (uc *bookingUsecase) SelectDoctor(ctx context.Context, sessionID string, request *requests.SelectDoctor) (*responses.BookingForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SelectDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	return uc.update(ctx, sessionID, func(ctx context.Context, form *Form) error {
		return form.SelectDoctor(ctx, request.DoctorID)
	})
}

func (uc *bookingUsecase) SelectDate(ctx context.Context, sessionID string, request *requests.SelectDate) (*responses.BookingForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SelectDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingSlotDateKey, request.Date),
	)

	return uc.update(ctx, sessionID, func(ctx context.Context, form *Form) error {
		return form.SelectDate(ctx, request.Date)
	})
}

func (uc *bookingUsecase) SelectSlot(ctx context.Context, sessionID string, request *requests.SelectSlot) (*responses.BookingForm, error) {
	return uc.update(ctx, sessionID, func(ctx context.Context, form *Form) error {
		form.SelectSlot(request.SlotID)
		return nil
	})
}

func (uc *bookingUsecase) SetDetails(ctx context.Context, sessionID string, request *requests.BookingDetails) (*responses.BookingForm, error) {
	return uc.update(ctx, sessionID, func(ctx context.Context, form *Form) error {
		form.SetDetails(request.Type, request.Reason, request.Symptoms)
		return nil
	})
}

// Submit books the selected slot. The dialog is reset afterwards and the
// hospital list is fetched again for the next booking.
func (uc *bookingUsecase) Submit(ctx context.Context, sessionID string) (*responses.BookingForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	snapshot, err := uc.update(ctx, sessionID, func(ctx context.Context, form *Form) error {
		appointment, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		uc.Log.Info("bookingUsecase.Submit succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
		)

		err = form.LoadHospitals(ctx)
		if err != nil {
			uc.Log.Warn("bookingUsecase.Submit error reloading hospitals",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.Submit error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return snapshot, nil
}

func (uc *bookingUsecase) Reset(ctx context.Context, sessionID string) (*responses.BookingForm, error) {
	return uc.update(ctx, sessionID, func(ctx context.Context, form *Form) error {
		form.Reset()
		return form.LoadHospitals(ctx)
	})
}

func (uc *bookingUsecase) CloseBookingForm(ctx context.Context, sessionID string) error {
	return uc.Store.Close(sessionID)
}

func (uc *bookingUsecase) update(ctx context.Context, sessionID string, fn func(ctx context.Context, form *Form) error) (*responses.BookingForm, error) {
	var snapshot *responses.BookingForm
	err := uc.withSession(ctx, sessionID, func(ctx context.Context, form *Form) error {
		err := fn(ctx, form)
		if err != nil {
			return err
		}
		snapshot = form.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (uc *bookingUsecase) withSession(ctx context.Context, sessionID string, fn func(ctx context.Context, form *Form) error) error {
	form, sessionCtx, err := uc.Store.Get(sessionID)
	if err != nil {
		return err
	}
	boundCtx, release := session.Bind(ctx, sessionCtx)
	defer release()
	return fn(boundCtx, form)
}
