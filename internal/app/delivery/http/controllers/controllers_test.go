package controllers

import (
	"context"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/dto/requests"
	"medportal-service/internal/pkg/dto/responses"
	"medportal-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockReferenceUsecase struct {
	mock.Mock
}

func (m *MockReferenceUsecase) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	args := m.Called(ctx)
	hospitals, _ := args.Get(0).([]models.Hospital)
	return hospitals, args.Error(1)
}

func (m *MockReferenceUsecase) ListDoctorsByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error) {
	args := m.Called(ctx, hospitalID)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) OpenSchedule(ctx context.Context, request *requests.OpenSchedule) (*responses.SessionOpened, error) {
	args := m.Called(ctx, request)
	opened, _ := args.Get(0).(*responses.SessionOpened)
	return opened, args.Error(1)
}

func (m *MockScheduleUsecase) GetSchedule(ctx context.Context, sessionID string) (*responses.Schedule, error) {
	args := m.Called(ctx, sessionID)
	schedule, _ := args.Get(0).(*responses.Schedule)
	return schedule, args.Error(1)
}

func (m *MockScheduleUsecase) ChangeDate(ctx context.Context, sessionID string, request *requests.ChangeScheduleDate) (*responses.Schedule, error) {
	args := m.Called(ctx, sessionID, request)
	schedule, _ := args.Get(0).(*responses.Schedule)
	return schedule, args.Error(1)
}

func (m *MockScheduleUsecase) AddSlot(ctx context.Context, sessionID string, request *requests.AddSlot) (*models.Slot, error) {
	args := m.Called(ctx, sessionID, request)
	slot, _ := args.Get(0).(*models.Slot)
	return slot, args.Error(1)
}

func (m *MockScheduleUsecase) DeleteSlot(ctx context.Context, sessionID, slotID string) error {
	args := m.Called(ctx, sessionID, slotID)
	return args.Error(0)
}

func (m *MockScheduleUsecase) CloseSchedule(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Fields  []string        `json:"fields"`
}

func serve(t *testing.T, router http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return rr.Code, env
}

func TestReferenceController(t *testing.T) {
	usecase := new(MockReferenceUsecase)
	controller := NewReferenceController(usecase, zap.NewNop())
	router := chi.NewRouter()
	router.Get("/hospitals", controller.ListHospitals)
	router.Get("/hospitals/{hospitalId}/doctors", controller.ListDoctorsByHospital)

	t.Run("Lists hospitals", func(t *testing.T) {
		usecase.On("ListHospitals", mock.Anything).
			Return([]models.Hospital{{HospitalID: "H1", Name: "City General"}}, nil).Once()

		code, env := serve(t, router, http.MethodGet, "/hospitals", "")

		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.Success)
		var hospitals []models.Hospital
		require.NoError(t, json.Unmarshal(env.Data, &hospitals))
		assert.Equal(t, "H1", hospitals[0].HospitalID)
	})

	t.Run("Passes the hospital id from the path", func(t *testing.T) {
		usecase.On("ListDoctorsByHospital", mock.Anything, "H7").
			Return([]models.Doctor{{DoctorID: "D1", HospitalID: "H7"}}, nil).Once()

		code, _ := serve(t, router, http.MethodGet, "/hospitals/H7/doctors", "")

		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("Backend failure becomes an error envelope", func(t *testing.T) {
		usecase.On("ListHospitals", mock.Anything).
			Return(nil, exceptions.ErrBackendStatus(http.StatusInternalServerError, "hospital")).Once()

		code, env := serve(t, router, http.MethodGet, "/hospitals", "")

		assert.Equal(t, http.StatusBadGateway, code)
		assert.False(t, env.Success)
	})

	usecase.AssertExpectations(t)
}

func TestScheduleController(t *testing.T) {
	usecase := new(MockScheduleUsecase)
	controller := NewScheduleController(usecase, zap.NewNop())
	router := chi.NewRouter()
	router.Post("/schedules", controller.OpenSchedule)
	router.Post("/schedules/{sessionId}/slots", controller.AddSlot)
	router.Delete("/schedules/{sessionId}/slots/{slotId}", controller.DeleteSlot)

	t.Run("Open requires a doctor", func(t *testing.T) {
		code, env := serve(t, router, http.MethodPost, "/schedules", `{"date":"2024-07-04"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, []string{"doctorId"}, env.Fields)
		usecase.AssertNotCalled(t, "OpenSchedule", mock.Anything, mock.Anything)
	})

	t.Run("Open returns the new session", func(t *testing.T) {
		usecase.On("OpenSchedule", mock.Anything, &requests.OpenSchedule{DoctorID: "D2"}).
			Return(&responses.SessionOpened{SessionID: "sess-1"}, nil).Once()

		code, env := serve(t, router, http.MethodPost, "/schedules", `{"doctorId":"D2"}`)

		assert.Equal(t, http.StatusCreated, code)
		var opened responses.SessionOpened
		require.NoError(t, json.Unmarshal(env.Data, &opened))
		assert.Equal(t, "sess-1", opened.SessionID)
	})

	t.Run("Add slot hands partial input to the usecase", func(t *testing.T) {
		usecase.On("AddSlot", mock.Anything, "sess-1", &requests.AddSlot{StartTime: "14:00"}).
			Return(nil, exceptions.ErrInputValidation(nil)).Once()

		code, _ := serve(t, router, http.MethodPost, "/schedules/sess-1/slots", `{"startTime":"14:00"}`)

		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("Malformed body is rejected", func(t *testing.T) {
		code, env := serve(t, router, http.MethodPost, "/schedules/sess-1/slots", `{`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.Success)
	})

	t.Run("Delete passes both path params", func(t *testing.T) {
		usecase.On("DeleteSlot", mock.Anything, "sess-1", "S9").Return(nil).Once()

		code, env := serve(t, router, http.MethodDelete, "/schedules/sess-1/slots/S9", "")

		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.Success)
	})

	usecase.AssertExpectations(t)
}
