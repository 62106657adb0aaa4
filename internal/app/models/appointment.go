package models

const (
	VisitTypeCheckup      = "Checkup"
	VisitTypeEmergency    = "Emergency"
	VisitTypeFollowUp     = "Follow up"
	VisitTypeConsultation = "Consultation"
)

var VisitTypes = []string{
	VisitTypeCheckup,
	VisitTypeEmergency,
	VisitTypeFollowUp,
	VisitTypeConsultation,
}

type Appointment struct {
	AppointmentID string `json:"appointmentId,omitempty"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	HospitalID    string `json:"hospitalId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Type          string `json:"type"`
	Reason        string `json:"reason"`
	Symptoms      string `json:"symptoms"`
	Status        string `json:"status,omitempty"`
}
