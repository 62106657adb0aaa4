package routers

import (
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/delivery/http/controllers"
	"medportal-service/internal/app/delivery/http/middlewares"
	"medportal-service/internal/app/models"
	"medportal-service/internal/app/services/backend"
	"medportal-service/internal/app/services/backend/backendtest"
	"medportal-service/internal/app/services/core/appointments"
	"medportal-service/internal/app/services/core/booking"
	"medportal-service/internal/app/services/core/reference"
	"medportal-service/internal/app/services/core/schedule"
	"medportal-service/internal/app/services/core/session"
	"medportal-service/internal/app/services/shared/locker"
	"medportal-service/internal/app/services/shared/notifier"
	"medportal-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*backendtest.Server, *chi.Mux) {
	t.Helper()
	server := backendtest.NewServer(t)
	server.AddHospital(models.Hospital{HospitalID: "H1", Name: "City General"})
	server.AddDoctor(models.Doctor{DoctorID: "D1", HospitalID: "H1", Name: "Dr. Rao"})
	server.AddSlot(models.Slot{
		SlotID: "S1", DoctorID: "D1", HospitalID: "H1", SlotDate: "2024-06-01",
		StartTime: "09:00", EndTime: "09:30", ApptStatus: models.SlotStatusOpen,
	})

	cfg := &config.InternalConfig{
		App:     config.App{Version: "v1", EndpointPrefix: "api", Timezone: "UTC"},
		Backend: config.Backend{BaseUrl: server.URL, RequestTimeoutInSeconds: 5},
		Booking: config.Booking{SlotLockTTLInSeconds: 30, ReservationMaxRetries: 1, ReservationInitialBackoffMs: 1},
	}
	log := zap.NewNop()
	transport := backend.NewTransport(cfg, nil, log)
	hospitalClient := backend.NewHospitalClient(transport, log)
	doctorClient := backend.NewDoctorClient(transport, log)
	slotClient := backend.NewSlotClient(transport, log)

	appointmentUsecase := appointments.NewAppointmentUsecase(
		backend.NewAppointmentClient(transport, log),
		locker.NewLocalLockService(cfg),
		notifier.NewNoopPublisher(log),
		cfg,
		log,
	)
	bookingUsecase := booking.NewBookingUsecase(session.NewStore[*booking.Form]("booking", log), hospitalClient, doctorClient, slotClient, appointmentUsecase, cfg, log)
	scheduleUsecase := schedule.NewScheduleUsecase(session.NewStore[*schedule.View]("schedule", log), slotClient, cfg, log)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		cfg,
		middlewares.NewMiddlewares(log, cfg),
		controllers.NewReferenceController(reference.NewReferenceUsecase(hospitalClient, doctorClient, log), log),
		controllers.NewBookingController(bookingUsecase, log),
		controllers.NewScheduleController(scheduleUsecase, log),
	)
	return server, router
}

func call(t *testing.T, router http.Handler, method, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return rr.Code
}

func TestBookingFlow(t *testing.T) {
	server, router := newTestRouter(t)

	var hospitals []models.Hospital
	assert.Equal(t, http.StatusOK, call(t, router, http.MethodGet, "/api/v1/hospitals", "", &hospitals))
	require.Len(t, hospitals, 1)

	var opened struct {
		SessionID string `json:"sessionId"`
	}
	require.Equal(t, http.StatusCreated, call(t, router, http.MethodPost, "/api/v1/bookings", `{"patientId":"P1"}`, &opened))
	require.NotEmpty(t, opened.SessionID)
	base := "/api/v1/bookings/" + opened.SessionID

	steps := []struct {
		path string
		body string
	}{
		{"/hospital", `{"hospitalId":"H1"}`},
		{"/doctor", `{"doctorId":"D1"}`},
		{"/date", `{"date":"2024-06-01"}`},
		{"/slot", `{"slotId":"S1"}`},
		{"/details", `{"type":"Checkup","reason":"Checkup","symptoms":"none"}`},
	}
	for _, step := range steps {
		require.Equal(t, http.StatusOK, call(t, router, http.MethodPut, base+step.path, step.body, nil), step.path)
	}

	var form struct {
		SlotID      string              `json:"slotId"`
		Appointment *models.Appointment `json:"appointment"`
	}
	require.Equal(t, http.StatusCreated, call(t, router, http.MethodPost, base+"/submit", "", &form))
	require.NotNil(t, form.Appointment)
	assert.Equal(t, "2024-06-01T09:00", form.Appointment.StartTime)
	assert.Equal(t, "2024-06-01T09:30", form.Appointment.EndTime)
	assert.Empty(t, form.SlotID)

	stored, _ := server.Slot("S1")
	assert.Equal(t, models.SlotStatusBooked, stored.ApptStatus)

	assert.Equal(t, http.StatusOK, call(t, router, http.MethodDelete, base, "", nil))
	assert.Equal(t, http.StatusNotFound, call(t, router, http.MethodGet, base, "", nil))
}

func TestScheduleFlow(t *testing.T) {
	server, router := newTestRouter(t)

	var opened struct {
		SessionID string `json:"sessionId"`
	}
	require.Equal(t, http.StatusCreated, call(t, router, http.MethodPost, "/api/v1/schedules", `{"doctorId":"D1","date":"2024-06-01"}`, &opened))
	base := "/api/v1/schedules/" + opened.SessionID

	var slot models.Slot
	require.Equal(t, http.StatusCreated, call(t, router, http.MethodPost, base+"/slots", `{"startTime":"14:00","endTime":"14:15","hospitalId":"H1"}`, &slot))
	assert.Equal(t, 1, server.Calls(constvars.OperationCreateSlot))

	assert.Equal(t, http.StatusBadRequest, call(t, router, http.MethodPost, base+"/slots", `{"startTime":"15:00"}`, nil))
	assert.Equal(t, 1, server.Calls(constvars.OperationCreateSlot))

	require.Equal(t, http.StatusOK, call(t, router, http.MethodDelete, base+"/slots/"+slot.SlotID, "", nil))

	var view struct {
		Slots []models.Slot `json:"slots"`
	}
	require.Equal(t, http.StatusOK, call(t, router, http.MethodGet, base, "", &view))
	require.Len(t, view.Slots, 1)
	assert.Equal(t, "S1", view.Slots[0].SlotID)
}

func TestMetricsEndpoint(t *testing.T) {
	_, router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
