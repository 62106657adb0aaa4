package notifier

import (
	"context"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher is the subset of *amqp091.Channel used to publish events.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type bookingPublisher struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

func NewBookingPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.BookingEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &bookingPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *bookingPublisher) PublishBookingConfirmed(ctx context.Context, event *models.BookingEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("bookingPublisher.PublishBookingConfirmed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
		zap.String(constvars.LoggingAppointmentIDKey, event.Appointment.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("bookingPublisher.PublishBookingConfirmed error marshaling event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.EventID,
		Type:         event.EventType,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("bookingPublisher.PublishBookingConfirmed error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("bookingPublisher.PublishBookingConfirmed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
	)
	return nil
}

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher is used when RabbitMQ is disabled.
func NewNoopPublisher(logger *zap.Logger) contracts.BookingEventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) PublishBookingConfirmed(ctx context.Context, event *models.BookingEvent) error {
	p.Log.Debug("noopPublisher.PublishBookingConfirmed skipped",
		zap.String(constvars.LoggingAppointmentIDKey, event.Appointment.AppointmentID),
	)
	return nil
}
