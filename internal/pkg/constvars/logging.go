package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingErrorKey          = "error"
	LoggingURLKey            = "url"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingResponseLengthKey = "response_length"
	LoggingOperationKey      = "operation"
	LoggingAttemptKey        = "attempt"
	LoggingNextDelayKey      = "next_delay"

	LoggingSlotIDKey        = "slot_id"
	LoggingSlotCountKey     = "slot_count"
	LoggingSlotStatusKey    = "slot_status"
	LoggingSlotDateKey      = "slot_date"
	LoggingSequenceKey      = "sequence"
	LoggingLatestSequence   = "latest_sequence"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingDoctorCountKey   = "doctor_count"
	LoggingHospitalIDKey    = "hospital_id"
	LoggingHospitalCountKey = "hospital_count"
	LoggingPatientIDKey     = "patient_id"
	LoggingAppointmentIDKey = "appointment_id"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueNameKey          = "queue_name"
	LoggingSessionCountKey       = "session_count"
)
