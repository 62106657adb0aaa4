package contracts

import (
	"context"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/dto/requests"
	"medportal-service/internal/pkg/dto/responses"
)

type ReferenceUsecase interface {
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	ListDoctorsByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error)
}

// BookingUsecase drives the patient booking form screens.
type BookingUsecase interface {
	OpenBookingForm(ctx context.Context, request *requests.OpenBookingForm) (*responses.SessionOpened, error)
	GetBookingForm(ctx context.Context, sessionID string) (*responses.BookingForm, error)
	SelectHospital(ctx context.Context, sessionID string, request *requests.SelectHospital) (*responses.BookingForm, error)
	SelectDoctor(ctx context.Context, sessionID string, request *requests.SelectDoctor) (*responses.BookingForm, error)
	SelectDate(ctx context.Context, sessionID string, request *requests.SelectDate) (*responses.BookingForm, error)
	SelectSlot(ctx context.Context, sessionID string, request *requests.SelectSlot) (*responses.BookingForm, error)
	SetDetails(ctx context.Context, sessionID string, request *requests.BookingDetails) (*responses.BookingForm, error)
	Submit(ctx context.Context, sessionID string) (*responses.BookingForm, error)
	Reset(ctx context.Context, sessionID string) (*responses.BookingForm, error)
	CloseBookingForm(ctx context.Context, sessionID string) error
}

// ScheduleUsecase drives the doctor slot management screens.
type ScheduleUsecase interface {
	OpenSchedule(ctx context.Context, request *requests.OpenSchedule) (*responses.SessionOpened, error)
	GetSchedule(ctx context.Context, sessionID string) (*responses.Schedule, error)
	ChangeDate(ctx context.Context, sessionID string, request *requests.ChangeScheduleDate) (*responses.Schedule, error)
	AddSlot(ctx context.Context, sessionID string, request *requests.AddSlot) (*models.Slot, error)
	DeleteSlot(ctx context.Context, sessionID, slotID string) error
	CloseSchedule(ctx context.Context, sessionID string) error
}
