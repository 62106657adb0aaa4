package models

import (
	"fmt"
	"medportal-service/internal/pkg/constvars"
	"time"
)

// SlotStatus is encoded on the wire as 0 (Open) or 1 (Booked).
type SlotStatus int

const (
	SlotStatusOpen   SlotStatus = 0
	SlotStatusBooked SlotStatus = 1
)

func (s SlotStatus) String() string {
	switch s {
	case SlotStatusOpen:
		return "Open"
	case SlotStatusBooked:
		return "Booked"
	default:
		return fmt.Sprintf("SlotStatus(%d)", int(s))
	}
}

// Slot is one bookable window of one doctor at one hospital on one date.
type Slot struct {
	SlotID     string     `json:"slotId"`
	DoctorID   string     `json:"doctorId"`
	HospitalID string     `json:"hospitalId"`
	SlotDate   string     `json:"slotDate"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	ApptStatus SlotStatus `json:"apptStatus"`
}

func (s Slot) IsOpen() bool {
	return s.ApptStatus == SlotStatusOpen
}

// AppointmentWindow joins the slot date with its start and end time-of-day,
// e.g. 2024-06-01T09:00 and 2024-06-01T09:30.
func (s Slot) AppointmentWindow() (start, end string, err error) {
	date, err := time.Parse(constvars.DateLayout, s.SlotDate)
	if err != nil {
		return "", "", err
	}
	startAt, err := atTimeOfDay(date, s.StartTime)
	if err != nil {
		return "", "", err
	}
	endAt, err := atTimeOfDay(date, s.EndTime)
	if err != nil {
		return "", "", err
	}
	return startAt.Format(constvars.AppointmentTimeLayout), endAt.Format(constvars.AppointmentTimeLayout), nil
}

func atTimeOfDay(date time.Time, timeOfDay string) (time.Time, error) {
	clock, err := time.Parse(constvars.TimeOfDayLayout, timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}
