package backend

import (
	"context"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/constvars"
	"net/url"

	"go.uber.org/zap"
)

type hospitalClient struct {
	Transport *Transport
	Log       *zap.Logger
}

func NewHospitalClient(transport *Transport, logger *zap.Logger) contracts.HospitalClient {
	return &hospitalClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *hospitalClient) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("hospitalClient.ListHospitals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var hospitals []models.Hospital
	err := c.Transport.do(ctx, call{
		operation: constvars.OperationListHospitals,
		resource:  constvars.ResourceHospital,
		method:    constvars.MethodGet,
		path:      constvars.BackendPathHospital,
		out:       &hospitals,
	})
	if err != nil {
		c.Log.Error("hospitalClient.ListHospitals error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("hospitalClient.ListHospitals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingHospitalCountKey, len(hospitals)),
	)
	return hospitals, nil
}

type doctorClient struct {
	Transport *Transport
	Log       *zap.Logger
}

func NewDoctorClient(transport *Transport, logger *zap.Logger) contracts.DoctorClient {
	return &doctorClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *doctorClient) ListDoctorsByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorClient.ListDoctorsByHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryHospitalID, hospitalID)

	var doctors []models.Doctor
	err := c.Transport.do(ctx, call{
		operation: constvars.OperationListDoctors,
		resource:  constvars.ResourceDoctor,
		method:    constvars.MethodGet,
		path:      constvars.BackendPathDoctorByHospital + "?" + query.Encode(),
		out:       &doctors,
	})
	if err != nil {
		c.Log.Error("doctorClient.ListDoctorsByHospital error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHospitalIDKey, hospitalID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("doctorClient.ListDoctorsByHospital succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
	)
	return doctors, nil
}
