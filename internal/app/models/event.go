package models

import "time"

// BookingEvent is published once a booking has been fully confirmed.
type BookingEvent struct {
	EventID     string      `json:"eventId"`
	EventType   string      `json:"eventType"`
	OccurredAt  time.Time   `json:"occurredAt"`
	Appointment Appointment `json:"appointment"`
	Slot        Slot        `json:"slot"`
}
