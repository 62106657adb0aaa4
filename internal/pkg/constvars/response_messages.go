package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	GetHospitalsSuccessMessage       = "get hospitals successfully"
	GetDoctorsSuccessMessage         = "get doctors successfully"
	OpenBookingFormSuccessMessage    = "booking form opened"
	GetBookingFormSuccessMessage     = "get booking form successfully"
	UpdateBookingFormSuccessMessage  = "booking form updated"
	ResetBookingFormSuccessMessage   = "booking form reset"
	CloseBookingFormSuccessMessage   = "booking form closed"
	CreateAppointmentSuccessMessage  = "appointment booked successfully"
	OpenScheduleSuccessMessage       = "doctor schedule opened"
	GetScheduleSuccessMessage        = "get doctor schedule successfully"
	ChangeScheduleDateSuccessMessage = "doctor schedule date changed"
	CreateSlotSuccessMessage         = "slot created successfully"
	DeleteSlotSuccessMessage         = "slot deleted successfully"
	CloseScheduleSuccessMessage      = "doctor schedule closed"
)
