package requests

type OpenSchedule struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"omitempty,calendar_date"`
}

type ChangeScheduleDate struct {
	Date string `json:"date" validate:"required,calendar_date"`
}

// AddSlot carries the doctor's "Add Slot" form. Presence of every field is
// checked before anything is sent to the backend.
type AddSlot struct {
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
	HospitalID string `json:"hospitalId" validate:"required"`
}
