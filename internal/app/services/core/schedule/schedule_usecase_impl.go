package schedule

import (
	"context"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/app/services/core/session"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"
	"medportal-service/internal/pkg/dto/responses"
	"medportal-service/internal/pkg/exceptions"
	"medportal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	Store      *session.Store[*View]
	SlotClient contracts.SlotClient
	Location   *time.Location
	Log        *zap.Logger
	now        func() time.Time
}

func NewScheduleUsecase(
	store *session.Store[*View],
	slotClient contracts.SlotClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		Store:      store,
		SlotClient: slotClient,
		Location:   utils.LoadLocation(internalConfig.App.Timezone),
		Log:        logger,
		now:        time.Now,
	}
}

// OpenSchedule opens a screen for the doctor on the requested date, today
// when none is given, and loads its slots.
func (uc *scheduleUsecase) OpenSchedule(ctx context.Context, request *requests.OpenSchedule) (*responses.SessionOpened, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.OpenSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	date, err := utils.ResolveDate(request.Date, uc.now(), uc.Location)
	if err != nil {
		return nil, exceptions.ErrInvalidDate(err, request.Date)
	}

	view := NewView(request.DoctorID, date, uc.SlotClient, uc.Log)
	sessionID := uc.Store.Open(view)

	err = uc.withSession(ctx, sessionID, func(ctx context.Context, view *View) error {
		return view.Refresh(ctx)
	})
	if err != nil {
		uc.Store.Close(sessionID)
		uc.Log.Error("scheduleUsecase.OpenSchedule error loading slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.OpenSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return &responses.SessionOpened{
		SessionID: sessionID,
		State:     view.Snapshot(),
	}, nil
}

func (uc *scheduleUsecase) GetSchedule(ctx context.Context, sessionID string) (*responses.Schedule, error) {
	view, _, err := uc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return view.Snapshot(), nil
}

func (uc *scheduleUsecase) ChangeDate(ctx context.Context, sessionID string, request *requests.ChangeScheduleDate) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ChangeDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingSlotDateKey, request.Date),
	)

	var snapshot *responses.Schedule
	err := uc.withSession(ctx, sessionID, func(ctx context.Context, view *View) error {
		err := view.ChangeDate(ctx, request.Date)
		if err != nil {
			return err
		}
		snapshot = view.Snapshot()
		return nil
	})
	if err != nil {
		uc.Log.Error("scheduleUsecase.ChangeDate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return snapshot, nil
}

func (uc *scheduleUsecase) AddSlot(ctx context.Context, sessionID string, request *requests.AddSlot) (*models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.AddSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	var slot *models.Slot
	err := uc.withSession(ctx, sessionID, func(ctx context.Context, view *View) error {
		created, err := view.AddSlot(ctx, request)
		slot = created
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.AddSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slot.SlotID),
	)
	return slot, nil
}

func (uc *scheduleUsecase) DeleteSlot(ctx context.Context, sessionID, slotID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	return uc.withSession(ctx, sessionID, func(ctx context.Context, view *View) error {
		return view.DeleteSlot(ctx, slotID)
	})
}

func (uc *scheduleUsecase) CloseSchedule(ctx context.Context, sessionID string) error {
	return uc.Store.Close(sessionID)
}

// withSession runs fn with a context that is also cancelled when the session
// is closed.
func (uc *scheduleUsecase) withSession(ctx context.Context, sessionID string, fn func(ctx context.Context, view *View) error) error {
	view, sessionCtx, err := uc.Store.Get(sessionID)
	if err != nil {
		return err
	}
	boundCtx, release := session.Bind(ctx, sessionCtx)
	defer release()
	return fn(boundCtx, view)
}
