package backend

import (
	"context"
	"fmt"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"
	"net/url"

	"go.uber.org/zap"
)

type slotClient struct {
	Transport *Transport
	Log       *zap.Logger
}

func NewSlotClient(transport *Transport, logger *zap.Logger) contracts.SlotClient {
	return &slotClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *slotClient) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("slotClient.ListByDoctorAndDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingSlotDateKey, date),
	)

	var slots []models.Slot
	err := c.Transport.do(ctx, call{
		operation: constvars.OperationListSlots,
		resource:  constvars.ResourceSlot,
		method:    constvars.MethodGet,
		path:      fmt.Sprintf(constvars.BackendPathSlotByDoctorAndDate, url.PathEscape(doctorID), url.PathEscape(date)),
		out:       &slots,
	})
	if err != nil {
		c.Log.Error("slotClient.ListByDoctorAndDate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if slots == nil {
		slots = []models.Slot{}
	}

	c.Log.Info("slotClient.ListByDoctorAndDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return slots, nil
}

func (c *slotClient) CreateSlot(ctx context.Context, request *requests.CreateSlot) (*models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("slotClient.CreateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSlotDateKey, request.SlotDate),
	)

	slot := new(models.Slot)
	err := c.Transport.do(ctx, call{
		operation: constvars.OperationCreateSlot,
		resource:  constvars.ResourceSlot,
		method:    constvars.MethodPost,
		path:      constvars.BackendPathSlot,
		body:      request,
		out:       slot,
	})
	if err != nil {
		c.Log.Error("slotClient.CreateSlot error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("slotClient.CreateSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slot.SlotID),
	)
	return slot, nil
}

// UpdateSlot sends the full slot record.
func (c *slotClient) UpdateSlot(ctx context.Context, slot *models.Slot) (*models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("slotClient.UpdateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slot.SlotID),
		zap.Stringer(constvars.LoggingSlotStatusKey, slot.ApptStatus),
	)

	updated := new(models.Slot)
	err := c.Transport.do(ctx, call{
		operation: constvars.OperationUpdateSlot,
		resource:  constvars.ResourceSlot,
		method:    constvars.MethodPut,
		path:      constvars.BackendPathSlot,
		body:      slot,
		out:       updated,
	})
	if err != nil {
		c.Log.Error("slotClient.UpdateSlot error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slot.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("slotClient.UpdateSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slot.SlotID),
	)
	return updated, nil
}

func (c *slotClient) DeleteSlot(ctx context.Context, slotID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("slotClient.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	err := c.Transport.do(ctx, call{
		operation: constvars.OperationDeleteSlot,
		resource:  constvars.ResourceSlot,
		method:    constvars.MethodDelete,
		path:      fmt.Sprintf(constvars.BackendPathSlotByID, url.PathEscape(slotID)),
	})
	if err != nil {
		c.Log.Error("slotClient.DeleteSlot error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("slotClient.DeleteSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
	return nil
}
