package exceptions

import (
	"errors"
	"fmt"

	"telecare-scheduler/internal/pkg/constvars"
)

var (
	ErrConfigMissing = func(err error, field string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s: %s", constvars.ErrDevConfigMissing, field), constvars.ReasonConfigMissing)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument, constvars.ReasonQueryFailed)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBUpdateDocument, constvars.ReasonPersistFailed)
	}
	ErrQueryAppointments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevQueryAppointments, constvars.ReasonQueryFailed)
	}
	ErrNoCredential = func(userID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s: %s", constvars.ErrDevNoCredential, userID), constvars.ReasonNoCredential)
	}
	ErrTokenRefresh = func(err error, userID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, fmt.Sprintf("%s for user %s", constvars.ErrDevTokenRefresh, userID), constvars.ReasonTokenRefreshFailed)
	}
	ErrCalendarProbe = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevCalendarProbe, constvars.ReasonCalendarError)
	}
	ErrCalendarCreateEvent = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevCalendarCreateEvent, constvars.ReasonCalendarError)
	}
	ErrNoConferenceLink = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevNoConferenceLink, constvars.ReasonNoConferenceLink)
	}
	ErrPersistMeetingLink = func(err error, appointmentID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %s", constvars.ErrDevPersistMeetingLink, appointmentID), constvars.ReasonPersistFailed)
	}
	ErrPersistCredential = func(err error, userID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s for user %s", constvars.ErrDevPersistCredential, userID), constvars.ReasonPersistFailed)
	}
	ErrUserNotExist = func(userID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s: %s", constvars.ErrDevUserNotExists, userID), constvars.ReasonLookupFailed)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet, constvars.ReasonUnknown)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet, constvars.ReasonUnknown)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete, constvars.ReasonUnknown)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock, constvars.ReasonUnknown)
	}
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidAPIKey, constvars.ReasonUnknown)
	}
)

// ReasonOf extracts the failure reason code carried by a CustomError, for
// folding into tick summaries. Unwrapped errors map to ReasonUnknown.
func ReasonOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Reason != "" {
		return customErr.Reason
	}
	return constvars.ReasonUnknown
}
