package reference

import (
	"context"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type referenceUsecase struct {
	HospitalClient contracts.HospitalClient
	DoctorClient   contracts.DoctorClient
	Log            *zap.Logger
}

func NewReferenceUsecase(hospitalClient contracts.HospitalClient, doctorClient contracts.DoctorClient, logger *zap.Logger) contracts.ReferenceUsecase {
	return &referenceUsecase{
		HospitalClient: hospitalClient,
		DoctorClient:   doctorClient,
		Log:            logger,
	}
}

func (uc *referenceUsecase) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	hospitals, err := uc.HospitalClient.ListHospitals(ctx)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("referenceUsecase.ListHospitals error calling HospitalClient.ListHospitals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if hospitals == nil {
		hospitals = []models.Hospital{}
	}
	return hospitals, nil
}

func (uc *referenceUsecase) ListDoctorsByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error) {
	doctors, err := uc.DoctorClient.ListDoctorsByHospital(ctx, hospitalID)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("referenceUsecase.ListDoctorsByHospital error calling DoctorClient.ListDoctorsByHospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHospitalIDKey, hospitalID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	return doctors, nil
}
