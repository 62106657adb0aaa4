package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MEDPORTAL_SVC_"
)

// Date and time-of-day layouts exchanged with the scheduling backend.
const (
	DateLayout            = "2006-01-02"
	TimeOfDayLayout       = "15:04"
	AppointmentTimeLayout = "2006-01-02T15:04"
)

const (
	LockKeySlotBookingFormat = "booking:slot:%s"
	DefaultSlotLockTTL       = 30 * time.Second
)

const (
	EventTypeBookingConfirmed = "booking.confirmed"
)
