package contracts

import (
	"context"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/dto/requests"
)

// Clients of the remote scheduling REST backend. Every failure wraps
// exceptions.ErrRequestFailed.
type (
	HospitalClient interface {
		ListHospitals(ctx context.Context) ([]models.Hospital, error)
	}

	DoctorClient interface {
		ListDoctorsByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error)
	}

	SlotClient interface {
		ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Slot, error)
		CreateSlot(ctx context.Context, request *requests.CreateSlot) (*models.Slot, error)
		UpdateSlot(ctx context.Context, slot *models.Slot) (*models.Slot, error)
		DeleteSlot(ctx context.Context, slotID string) error
	}

	AppointmentClient interface {
		CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	}
)
