package schedule

import (
	"context"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/app/services/core/slots"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"
	"medportal-service/internal/pkg/dto/responses"
	"medportal-service/internal/pkg/exceptions"
	"medportal-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

// View is one doctor's slot management screen for one date.
type View struct {
	DoctorID   string
	SlotClient contracts.SlotClient
	Board      *slots.Board
	Log        *zap.Logger

	mu   sync.Mutex
	date string
}

func NewView(doctorID, date string, slotClient contracts.SlotClient, logger *zap.Logger) *View {
	return &View{
		DoctorID:   doctorID,
		SlotClient: slotClient,
		Board:      slots.NewBoard(slotClient, nil, logger),
		Log:        logger,
		date:       date,
	}
}

func (v *View) Date() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.date
}

func (v *View) Refresh(ctx context.Context) error {
	return v.Board.Load(ctx, v.DoctorID, v.Date())
}

// ChangeDate switches the screen to date and reloads its slots.
func (v *View) ChangeDate(ctx context.Context, date string) error {
	v.mu.Lock()
	v.date = date
	v.mu.Unlock()
	return v.Board.Load(ctx, v.DoctorID, date)
}

// AddSlot creates an open slot for the screen's doctor and date. Missing
// fields are reported per field and nothing is sent. The created slot is
// listed only if the screen still shows the list it was added from.
func (v *View) AddSlot(ctx context.Context, request *requests.AddSlot) (*models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := utils.ValidateStruct(request)
	if err != nil {
		v.Log.Error("View.AddSlot error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	v.mu.Lock()
	date := v.date
	generation := v.Board.Generation()
	v.mu.Unlock()

	slot, err := v.SlotClient.CreateSlot(ctx, &requests.CreateSlot{
		DoctorID:   v.DoctorID,
		SlotDate:   date,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		HospitalID: request.HospitalID,
		ApptStatus: models.SlotStatusOpen,
	})
	if err != nil {
		v.Log.Error("View.AddSlot error calling SlotClient.CreateSlot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// the screen may have moved to another date while the POST was in flight
	if v.Date() != date || !v.Board.AppendIfCurrent(*slot, generation) {
		v.Log.Info("View.AddSlot created slot not shown on the current list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slot.SlotID),
			zap.String(constvars.LoggingSlotDateKey, date),
		)
	}
	return slot, nil
}

// DeleteSlot removes the slot locally only once the backend confirmed it.
func (v *View) DeleteSlot(ctx context.Context, slotID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := v.SlotClient.DeleteSlot(ctx, slotID)
	if err != nil {
		v.Log.Error("View.DeleteSlot error calling SlotClient.DeleteSlot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return err
	}

	v.Board.Remove(slotID)
	return nil
}

func (v *View) Snapshot() *responses.Schedule {
	return &responses.Schedule{
		DoctorID: v.DoctorID,
		Date:     v.Date(),
		Slots:    v.Board.Slots(),
	}
}
