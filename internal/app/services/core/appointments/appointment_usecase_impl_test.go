package appointments

import (
	"context"
	"errors"
	"fmt"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/models"
	"medportal-service/internal/app/services/backend"
	"medportal-service/internal/app/services/backend/backendtest"
	"medportal-service/internal/app/services/core/slots"
	"medportal-service/internal/app/services/shared/locker"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*models.BookingEvent
	err    error
}

func (p *recordingPublisher) PublishBookingConfirmed(ctx context.Context, event *models.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

type fixture struct {
	server    *backendtest.Server
	usecase   *AppointmentUsecase
	board     *slots.Board
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	server := backendtest.NewServer(t)
	server.AddSlot(models.Slot{
		SlotID: "S1", DoctorID: "D1", HospitalID: "H1", SlotDate: "2024-06-01",
		StartTime: "09:00", EndTime: "09:30", ApptStatus: models.SlotStatusOpen,
	})

	cfg := &config.InternalConfig{
		Backend: config.Backend{BaseUrl: server.URL, RequestTimeoutInSeconds: 5},
		Booking: config.Booking{SlotLockTTLInSeconds: 30},
	}
	transport := backend.NewTransport(cfg, nil, zap.NewNop())
	publisher := &recordingPublisher{}
	usecase := NewAppointmentUsecase(
		backend.NewAppointmentClient(transport, zap.NewNop()),
		locker.NewLocalLockService(cfg),
		publisher,
		cfg,
		zap.NewNop(),
	)
	board := slots.NewBoard(backend.NewSlotClient(transport, zap.NewNop()), func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 2)
	}, zap.NewNop())
	require.NoError(t, board.Load(context.Background(), "D1", "2024-06-01"))

	return &fixture{server: server, usecase: usecase, board: board, publisher: publisher}
}

func checkupRequest() *BookingRequest {
	return &BookingRequest{
		PatientID:  "P1",
		DoctorID:   "D1",
		HospitalID: "H1",
		SlotID:     "S1",
		Type:       models.VisitTypeCheckup,
		Reason:     "Checkup",
		Symptoms:   "none",
	}
}

func TestAppointmentUsecaseBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates appointment then books the slot", func(t *testing.T) {
		f := newFixture(t)

		appointment, err := f.usecase.Book(ctx, checkupRequest(), f.board)
		require.NoError(t, err)

		assert.Equal(t, "2024-06-01T09:00", appointment.StartTime)
		assert.Equal(t, "2024-06-01T09:30", appointment.EndTime)
		assert.Equal(t, "Checkup", appointment.Reason)

		stored, _ := f.server.Slot("S1")
		assert.Equal(t, models.SlotStatusBooked, stored.ApptStatus)
		local, _ := f.board.Find("S1")
		assert.Equal(t, models.SlotStatusBooked, local.ApptStatus)

		require.Len(t, f.publisher.events, 1)
		event := f.publisher.events[0]
		assert.Equal(t, constvars.EventTypeBookingConfirmed, event.EventType)
		assert.Equal(t, appointment.AppointmentID, event.Appointment.AppointmentID)
		assert.Equal(t, models.SlotStatusBooked, event.Slot.ApptStatus)
	})

	t.Run("Appointment failure leaves the slot untouched", func(t *testing.T) {
		f := newFixture(t)
		f.server.Fail(constvars.OperationCreateAppointment, http.StatusInternalServerError)

		appointment, err := f.usecase.Book(ctx, checkupRequest(), f.board)

		assert.Nil(t, appointment)
		assert.True(t, errors.Is(err, exceptions.ErrRequestFailed))
		assert.Equal(t, 0, f.server.Calls(constvars.OperationUpdateSlot))
		local, _ := f.board.Find("S1")
		assert.True(t, local.IsOpen())
		assert.Empty(t, f.publisher.events)
	})

	t.Run("Transient reservation failure is retried", func(t *testing.T) {
		f := newFixture(t)
		f.server.Fail(constvars.OperationUpdateSlot, http.StatusServiceUnavailable)

		_, err := f.usecase.Book(ctx, checkupRequest(), f.board)
		require.NoError(t, err)

		assert.Equal(t, 2, f.server.Calls(constvars.OperationUpdateSlot))
		stored, _ := f.server.Slot("S1")
		assert.Equal(t, models.SlotStatusBooked, stored.ApptStatus)
	})

	t.Run("Persistent reservation failure is reported with the appointment", func(t *testing.T) {
		f := newFixture(t)
		f.server.Fail(constvars.OperationUpdateSlot, http.StatusInternalServerError, http.StatusInternalServerError, http.StatusInternalServerError)

		appointment, err := f.usecase.Book(ctx, checkupRequest(), f.board)

		require.Error(t, err)
		require.NotNil(t, appointment)
		assert.Len(t, f.server.Appointments(), 1)
		assert.True(t, errors.Is(err, exceptions.ErrRequestFailed))
		assert.Equal(t, http.StatusBadGateway, exceptions.StatusCodeOf(err))
		assert.Contains(t, err.Error(), fmt.Sprintf("appointment %s created", appointment.AppointmentID))

		local, _ := f.board.Find("S1")
		assert.True(t, local.IsOpen(), "optimistic flip is rolled back")
		assert.Empty(t, f.publisher.events)
	})

	t.Run("Created appointment only retries the reservation", func(t *testing.T) {
		f := newFixture(t)
		f.server.Fail(constvars.OperationUpdateSlot, http.StatusInternalServerError, http.StatusInternalServerError, http.StatusInternalServerError)

		created, err := f.usecase.Book(ctx, checkupRequest(), f.board)
		require.Error(t, err)
		require.NotNil(t, created)

		request := checkupRequest()
		request.Created = created
		appointment, err := f.usecase.Book(ctx, request, f.board)
		require.NoError(t, err)

		assert.Equal(t, created.AppointmentID, appointment.AppointmentID)
		assert.Equal(t, 1, f.server.Calls(constvars.OperationCreateAppointment))
		assert.Len(t, f.server.Appointments(), 1)
		stored, _ := f.server.Slot("S1")
		assert.Equal(t, models.SlotStatusBooked, stored.ApptStatus)
		require.Len(t, f.publisher.events, 1)
	})

	t.Run("Slot not in loaded list is rejected before sending", func(t *testing.T) {
		f := newFixture(t)
		request := checkupRequest()
		request.SlotID = "S404"

		_, err := f.usecase.Book(ctx, request, f.board)

		assert.Equal(t, http.StatusUnprocessableEntity, exceptions.StatusCodeOf(err))
		assert.Equal(t, 0, f.server.Calls(constvars.OperationCreateAppointment))
	})

	t.Run("Missing slot is rejected before sending", func(t *testing.T) {
		f := newFixture(t)
		request := checkupRequest()
		request.SlotID = ""

		_, err := f.usecase.Book(ctx, request, f.board)

		assert.Error(t, err)
		assert.Equal(t, 0, f.server.Calls(constvars.OperationCreateAppointment))
	})

	t.Run("Booked slot is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.Book(ctx, checkupRequest(), f.board)
		require.NoError(t, err)

		_, err = f.usecase.Book(ctx, checkupRequest(), f.board)

		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
		assert.Len(t, f.server.Appointments(), 1)
	})

	t.Run("Locked slot is rejected", func(t *testing.T) {
		f := newFixture(t)
		acquired, _, err := f.usecase.LockService.TryLock(ctx, locker.SlotBookingKey("S1"), time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		_, err = f.usecase.Book(ctx, checkupRequest(), f.board)

		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
		assert.Equal(t, 0, f.server.Calls(constvars.OperationCreateAppointment))
	})

	t.Run("Publish failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t)
		f.publisher.err = errors.New("broker down")

		appointment, err := f.usecase.Book(ctx, checkupRequest(), f.board)

		require.NoError(t, err)
		assert.NotEmpty(t, appointment.AppointmentID)
	})
}
