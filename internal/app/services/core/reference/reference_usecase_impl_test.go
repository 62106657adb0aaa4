package reference

import (
	"context"
	"errors"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/models"
	"medportal-service/internal/app/services/backend"
	"medportal-service/internal/app/services/backend/backendtest"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(t *testing.T) (*backendtest.Server, *referenceUsecase) {
	t.Helper()
	server := backendtest.NewServer(t)
	cfg := &config.InternalConfig{Backend: config.Backend{BaseUrl: server.URL, RequestTimeoutInSeconds: 5}}
	transport := backend.NewTransport(cfg, nil, zap.NewNop())
	uc := NewReferenceUsecase(
		backend.NewHospitalClient(transport, zap.NewNop()),
		backend.NewDoctorClient(transport, zap.NewNop()),
		zap.NewNop(),
	).(*referenceUsecase)
	return server, uc
}

func TestReferenceUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty backend gives empty lists", func(t *testing.T) {
		_, uc := newTestUsecase(t)

		hospitals, err := uc.ListHospitals(ctx)
		require.NoError(t, err)
		assert.NotNil(t, hospitals)
		assert.Empty(t, hospitals)

		doctors, err := uc.ListDoctorsByHospital(ctx, "H1")
		require.NoError(t, err)
		assert.NotNil(t, doctors)
	})

	t.Run("Doctors are filtered by hospital", func(t *testing.T) {
		server, uc := newTestUsecase(t)
		server.AddDoctor(models.Doctor{DoctorID: "D1", HospitalID: "H1"})
		server.AddDoctor(models.Doctor{DoctorID: "D3", HospitalID: "H2"})

		doctors, err := uc.ListDoctorsByHospital(ctx, "H2")
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "D3", doctors[0].DoctorID)
	})

	t.Run("Failures wrap the request failure kind", func(t *testing.T) {
		server, uc := newTestUsecase(t)
		server.Fail(constvars.OperationListHospitals, http.StatusServiceUnavailable)

		_, err := uc.ListHospitals(ctx)
		assert.True(t, errors.Is(err, exceptions.ErrRequestFailed))
	})
}
