package backend

import (
	"context"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type appointmentClient struct {
	Transport *Transport
	Log       *zap.Logger
}

func NewAppointmentClient(transport *Transport, logger *zap.Logger) contracts.AppointmentClient {
	return &appointmentClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *appointmentClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	appointment := new(models.Appointment)
	err := c.Transport.do(ctx, call{
		operation: constvars.OperationCreateAppointment,
		resource:  constvars.ResourceAppointment,
		method:    constvars.MethodPost,
		path:      constvars.BackendPathAppointment,
		body:      request,
		out:       appointment,
	})
	if err != nil {
		c.Log.Error("appointmentClient.CreateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
	)
	return appointment, nil
}
