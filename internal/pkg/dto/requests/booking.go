package requests

type OpenBookingForm struct {
	PatientID string `json:"patientId" validate:"required"`
}

type SelectHospital struct {
	HospitalID string `json:"hospitalId" validate:"required"`
}

type SelectDoctor struct {
	DoctorID string `json:"doctorId" validate:"required"`
}

type SelectDate struct {
	Date string `json:"date" validate:"required,calendar_date"`
}

type SelectSlot struct {
	SlotID string `json:"slotId" validate:"required"`
}

type BookingDetails struct {
	Type     string `json:"type" validate:"omitempty,visit_type"`
	Reason   string `json:"reason"`
	Symptoms string `json:"symptoms"`
}
