package appointments

import (
	"context"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/app/services/core/slots"
	"medportal-service/internal/app/services/shared/locker"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"
	"medportal-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingRequest is what the booking form hands over on submit.
type BookingRequest struct {
	PatientID  string
	DoctorID   string
	HospitalID string
	SlotID     string
	Type       string
	Reason     string
	Symptoms   string
	// Created is an appointment an earlier attempt already created for SlotID.
	// When set only the slot reservation is retried.
	Created *models.Appointment
}

type AppointmentUsecase struct {
	AppointmentClient contracts.AppointmentClient
	LockService       contracts.LockerService
	EventPublisher    contracts.BookingEventPublisher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewAppointmentUsecase(
	appointmentClient contracts.AppointmentClient,
	lockService contracts.LockerService,
	eventPublisher contracts.BookingEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *AppointmentUsecase {
	return &AppointmentUsecase{
		AppointmentClient: appointmentClient,
		LockService:       lockService,
		EventPublisher:    eventPublisher,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

// Book creates the appointment for the selected slot, then reserves the slot
// on board. The slot must be present and open in board before anything is
// sent. If the appointment was created but the reservation could not be
// completed, the appointment is returned together with the error so that a
// later attempt can pass it back as request.Created.
func (uc *AppointmentUsecase) Book(ctx context.Context, request *BookingRequest, board *slots.Board) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("AppointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	slot, found := board.Find(request.SlotID)
	if !found {
		err := exceptions.ErrSlotNotInList(request.SlotID)
		uc.Log.Error("AppointmentUsecase.Book slot not in loaded list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !slot.IsOpen() {
		return nil, exceptions.ErrSlotAlreadyBooked(slot.SlotID)
	}

	startTime, endTime, err := slot.AppointmentWindow()
	if err != nil {
		uc.Log.Error("AppointmentUsecase.Book error building appointment window",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotDateKey, slot.SlotDate),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidDate(err, slot.SlotDate)
	}

	lockKey := locker.SlotBookingKey(slot.SlotID)
	lockTTL := time.Duration(uc.InternalConfig.Booking.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		uc.Log.Error("AppointmentUsecase.Book error calling LockService.TryLock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLocked(slot.SlotID)
	}
	defer func() {
		// the caller's context may already be cancelled
		unlockErr := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Warn("AppointmentUsecase.Book error calling LockService.Unlock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	appointment := request.Created
	if appointment != nil {
		uc.Log.Info("AppointmentUsecase.Book resuming reservation for created appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
		)
	} else {
		appointment, err = uc.AppointmentClient.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientID:  request.PatientID,
			DoctorID:   request.DoctorID,
			HospitalID: request.HospitalID,
			StartTime:  startTime,
			EndTime:    endTime,
			Type:       request.Type,
			Reason:     request.Reason,
			Symptoms:   request.Symptoms,
		})
		if err != nil {
			uc.Log.Error("AppointmentUsecase.Book error calling AppointmentClient.CreateAppointment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	reserved, err := board.Reserve(ctx, slot.SlotID)
	if err != nil {
		err = exceptions.ErrSlotReservationFailed(err, appointment.AppointmentID, slot.SlotID)
		uc.Log.Error("AppointmentUsecase.Book appointment created but slot reservation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
			zap.String(constvars.LoggingSlotIDKey, slot.SlotID),
			zap.Error(err),
		)
		return appointment, err
	}

	uc.publishConfirmed(ctx, appointment, reserved)

	uc.Log.Info("AppointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
		zap.String(constvars.LoggingSlotIDKey, slot.SlotID),
	)
	return appointment, nil
}

func (uc *AppointmentUsecase) publishConfirmed(ctx context.Context, appointment *models.Appointment, slot *models.Slot) {
	if uc.EventPublisher == nil {
		return
	}

	event := &models.BookingEvent{
		EventID:     uuid.NewString(),
		EventType:   constvars.EventTypeBookingConfirmed,
		OccurredAt:  uc.now().UTC(),
		Appointment: *appointment,
		Slot:        *slot,
	}
	err := uc.EventPublisher.PublishBookingConfirmed(context.WithoutCancel(ctx), event)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("AppointmentUsecase.publishConfirmed error calling EventPublisher.PublishBookingConfirmed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
			zap.Error(err),
		)
	}
}
