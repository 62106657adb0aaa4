package requests

import "medportal-service/internal/app/models"

// CreateSlot is the body of POST /slot.
type CreateSlot struct {
	DoctorID   string            `json:"doctorId"`
	SlotDate   string            `json:"slotDate"`
	StartTime  string            `json:"startTime"`
	EndTime    string            `json:"endTime"`
	HospitalID string            `json:"hospitalId"`
	ApptStatus models.SlotStatus `json:"apptStatus"`
}

// CreateAppointment is the body of POST /appointment.
type CreateAppointment struct {
	PatientID  string `json:"patientId"`
	DoctorID   string `json:"doctorId"`
	HospitalID string `json:"hospitalId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Type       string `json:"type"`
	Reason     string `json:"reason"`
	Symptoms   string `json:"symptoms"`
}
