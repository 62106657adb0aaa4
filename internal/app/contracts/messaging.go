package contracts

import (
	"context"
	"medportal-service/internal/app/models"
)

type BookingEventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event *models.BookingEvent) error
}
