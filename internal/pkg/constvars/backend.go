package constvars

// Resource names of the scheduling backend, used in errors, logs and metrics.
const (
	ResourceSlot        = "slot"
	ResourceHospital    = "hospital"
	ResourceDoctor      = "doctor"
	ResourceAppointment = "appointment"
)

const (
	BackendPathSlot                = "/slot"
	BackendPathSlotByDoctorAndDate = "/slot/doctor/%s/date/%s"
	BackendPathSlotByID            = "/slot/%s"
	BackendPathHospital            = "/hospital"
	BackendPathDoctorByHospital    = "/doctor/doctor-hospital"
	BackendPathAppointment         = "/appointment"

	BackendQueryHospitalID = "hospitalId"
)

// Metric operation labels.
const (
	OperationListSlots         = "list_slots"
	OperationCreateSlot        = "create_slot"
	OperationUpdateSlot        = "update_slot"
	OperationDeleteSlot        = "delete_slot"
	OperationListHospitals     = "list_hospitals"
	OperationListDoctors       = "list_doctors"
	OperationCreateAppointment = "create_appointment"
)
