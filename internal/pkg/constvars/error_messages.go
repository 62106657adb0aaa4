package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"oneof":         "must be one of [%s]",
	"calendar_date": "must be a date in YYYY-MM-DD format",
	"visit_type":    "must be one of [Checkup, Emergency, Follow up, Consultation]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof": true,
}

const (
	ErrClientCannotProcessRequest          = "we couldn't process your request, please try again"
	ErrClientSomethingWrongWithApplication = "something went wrong on our side, please try again later"
	ErrClientSchedulingServiceUnavailable  = "the scheduling service did not respond, please try again"
	ErrClientSessionNotFound               = "this screen has expired, please reopen it"
	ErrClientSlotNotSelected               = "please select an available slot"
	ErrClientSlotNotAvailable              = "the selected slot is no longer available"
	ErrClientSubmissionInProgress          = "your booking is already being processed"
	ErrClientBookingIncomplete             = "your appointment was created but the slot could not be reserved, please contact the clinic"
	ErrClientDoctorNotSelected             = "please select a doctor first"
	ErrClientHospitalNotSelected           = "please select a hospital first"
)

const (
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevBackendUnexpectedStatus = "scheduling backend returned status %d for %s"
	ErrDevDecodeResponse          = "failed to decode %s response"
	ErrDevCannotMarshalJSON       = "failed to marshal JSON"
	ErrDevCannotParseJSON         = "failed to parse JSON body"
	ErrDevValidationFailed        = "input validation failed"
	ErrDevSessionNotFound         = "screen session %s not found"
	ErrDevSlotNotInList           = "slot %s is not in the loaded slot list"
	ErrDevSlotAlreadyBooked       = "slot %s is already booked"
	ErrDevSlotLocked              = "slot %s is locked by another booking"
	ErrDevSubmissionInProgress    = "booking submission already in flight"
	ErrDevSlotReservationFailed   = "appointment %s created but slot %s reservation failed"
	ErrDevDoctorNotSelected       = "no doctor selected"
	ErrDevHospitalNotSelected     = "no hospital selected"
	ErrDevInvalidDate             = "invalid date %q"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisGetNoData  = "failed to get data from redis with key %s"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)
