package slots

import (
	"context"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/exceptions"
	"slices"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Board is the slot list displayed by one screen. Every Load replaces the
// whole list; only the response to the most recently issued Load is applied.
type Board struct {
	SlotClient contracts.SlotClient
	// NewBackOff builds the retry policy of a reservation PUT. Nil means a
	// single attempt.
	NewBackOff func() backoff.BackOff
	Log        *zap.Logger

	mu     sync.Mutex
	slots  []models.Slot
	issued uint64
}

func NewBoard(slotClient contracts.SlotClient, newBackOff func() backoff.BackOff, logger *zap.Logger) *Board {
	return &Board{
		SlotClient: slotClient,
		NewBackOff: newBackOff,
		Log:        logger,
		slots:      []models.Slot{},
	}
}

// Load fetches the slots of doctorID on date. On failure the current list is
// kept. A response overtaken by a later Load or Clear is discarded.
func (b *Board) Load(ctx context.Context, doctorID, date string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	b.mu.Lock()
	b.issued++
	sequence := b.issued
	b.mu.Unlock()

	b.Log.Info("Board.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingSlotDateKey, date),
		zap.Uint64(constvars.LoggingSequenceKey, sequence),
	)

	slots, err := b.SlotClient.ListByDoctorAndDate(ctx, doctorID, date)

	b.mu.Lock()
	defer b.mu.Unlock()

	if sequence != b.issued {
		b.Log.Info("Board.Load discarded stale response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingSequenceKey, sequence),
			zap.Uint64(constvars.LoggingLatestSequence, b.issued),
		)
		return nil
	}

	if err != nil {
		b.Log.Error("Board.Load error calling SlotClient.ListByDoctorAndDate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	b.slots = slots
	b.Log.Info("Board.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return nil
}

// Clear empties the list and invalidates every Load still in flight.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.issued++
	b.slots = []models.Slot{}
}

func (b *Board) Slots() []models.Slot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.slots)
}

func (b *Board) Find(slotID string) (models.Slot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	index := b.indexOf(slotID)
	if index < 0 {
		return models.Slot{}, false
	}
	return b.slots[index], true
}

func (b *Board) Append(slot models.Slot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots = append(b.slots, slot)
}

// Generation identifies the current list. It changes on every Load and Clear.
func (b *Board) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.issued
}

// AppendIfCurrent appends slot only when no Load or Clear was issued since
// generation was read.
func (b *Board) AppendIfCurrent(slot models.Slot, generation uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if generation != b.issued {
		return false
	}
	b.slots = append(b.slots, slot)
	return true
}

// Remove drops the entry with slotID and reports whether it was present.
func (b *Board) Remove(slotID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	index := b.indexOf(slotID)
	if index < 0 {
		return false
	}
	b.slots = slices.Delete(b.slots, index, index+1)
	return true
}

// Reserve marks the slot Booked locally, then sends the full record to the
// backend. If the backend never accepts it the local entry is reverted.
func (b *Board) Reserve(ctx context.Context, slotID string) (*models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	b.Log.Info("Board.Reserve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	b.mu.Lock()
	index := b.indexOf(slotID)
	if index < 0 {
		b.mu.Unlock()
		return nil, exceptions.ErrSlotNotInList(slotID)
	}
	previous := b.slots[index]
	if !previous.IsOpen() {
		b.mu.Unlock()
		return nil, exceptions.ErrSlotAlreadyBooked(slotID)
	}
	booked := previous
	booked.ApptStatus = models.SlotStatusBooked
	b.slots[index] = booked
	b.mu.Unlock()

	policy := backoff.BackOff(&backoff.StopBackOff{})
	if b.NewBackOff != nil {
		policy = b.NewBackOff()
	}

	attempt := 0
	var lastErr error
	operation := func() error {
		attempt++
		_, lastErr = b.SlotClient.UpdateSlot(ctx, &booked)
		return lastErr
	}
	notify := func(err error, next time.Duration) {
		b.Log.Warn("Board.Reserve retrying SlotClient.UpdateSlot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Duration(constvars.LoggingNextDelayKey, next),
			zap.Error(err),
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify)
	if err != nil {
		// a cancelled context hides the backend failure
		if lastErr != nil {
			err = lastErr
		}
		b.rollback(booked, previous)
		b.Log.Error("Board.Reserve error calling SlotClient.UpdateSlot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(err),
		)
		return nil, err
	}

	b.Log.Info("Board.Reserve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
	return &booked, nil
}

// rollback restores previous unless the list was reloaded in the meantime.
func (b *Board) rollback(booked, previous models.Slot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	index := b.indexOf(booked.SlotID)
	if index >= 0 && b.slots[index] == booked {
		b.slots[index] = previous
	}
}

func (b *Board) indexOf(slotID string) int {
	return slices.IndexFunc(b.slots, func(slot models.Slot) bool {
		return slot.SlotID == slotID
	})
}
