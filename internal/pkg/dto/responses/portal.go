package responses

import "medportal-service/internal/app/models"

type SessionOpened struct {
	SessionID string `json:"sessionId"`
	State     any    `json:"state"`
}

// BookingForm is what the patient booking dialog renders.
type BookingForm struct {
	PatientID   string              `json:"patientId"`
	HospitalID  string              `json:"hospitalId,omitempty"`
	DoctorID    string              `json:"doctorId,omitempty"`
	SlotID      string              `json:"slotId,omitempty"`
	Type        string              `json:"type,omitempty"`
	Date        string              `json:"date"`
	Reason      string              `json:"reason,omitempty"`
	Symptoms    string              `json:"symptoms,omitempty"`
	Submitting  bool                `json:"submitting"`
	Hospitals   []models.Hospital   `json:"hospitals"`
	Doctors     []models.Doctor     `json:"doctors"`
	Slots       []models.Slot       `json:"slots"`
	VisitTypes  []string            `json:"visitTypes"`
	Appointment *models.Appointment `json:"appointment,omitempty"`
	// Pending is created but its slot is not reserved yet
	Pending *models.Appointment `json:"pendingAppointment,omitempty"`
}

// Schedule is what the doctor scheduling screen renders.
type Schedule struct {
	DoctorID string        `json:"doctorId"`
	Date     string        `json:"date"`
	Slots    []models.Slot `json:"slots"`
}
