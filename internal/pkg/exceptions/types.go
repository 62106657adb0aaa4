package exceptions

import (
	"fmt"
	"medportal-service/internal/pkg/constvars"
)

func requestFailed(err error) error {
	if err == nil {
		return ErrRequestFailed
	}
	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
		customErr.Fields = ValidationErrorFields(err)
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInvalidDate = func(err error, date string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.CustomValidationErrorMessages["calendar_date"], fmt.Sprintf(constvars.ErrDevInvalidDate, date))
	}

	// Screen sessions
	ErrSessionNotFound = func(sessionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientSessionNotFound, fmt.Sprintf(constvars.ErrDevSessionNotFound, sessionID))
	}

	// Booking workflow
	ErrHospitalNotSelected = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientHospitalNotSelected, constvars.ErrDevHospitalNotSelected)
	}
	ErrDoctorNotSelected = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientDoctorNotSelected, constvars.ErrDevDoctorNotSelected)
	}
	ErrSlotNotInList = func(slotID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientSlotNotSelected, fmt.Sprintf(constvars.ErrDevSlotNotInList, slotID))
	}
	ErrSlotAlreadyBooked = func(slotID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSlotNotAvailable, fmt.Sprintf(constvars.ErrDevSlotAlreadyBooked, slotID))
	}
	ErrSlotLocked = func(slotID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSlotNotAvailable, fmt.Sprintf(constvars.ErrDevSlotLocked, slotID))
	}
	ErrSubmissionInProgress = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSubmissionInProgress, constvars.ErrDevSubmissionInProgress)
	}
	ErrSlotReservationFailed = func(err error, appointmentID, slotID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBookingIncomplete, fmt.Sprintf(constvars.ErrDevSlotReservationFailed, appointmentID, slotID))
	}

	// Scheduling backend
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(requestFailed(err), constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(requestFailed(err), constvars.StatusBadGateway, constvars.ErrClientSchedulingServiceUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrBackendStatus = func(statusCode int, resource string) *CustomError {
		return BuildNewCustomError(requestFailed(nil), constvars.StatusBadGateway, constvars.ErrClientSchedulingServiceUnavailable, fmt.Sprintf(constvars.ErrDevBackendUnexpectedStatus, statusCode, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(requestFailed(err), constvars.StatusBadGateway, constvars.ErrClientSchedulingServiceUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)
