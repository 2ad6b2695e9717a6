package constvars

const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientSchedulerUnavailable          = "Scheduler is unavailable, please try again later"
)

const (
	ErrDevConfigMissing           = "required configuration is missing"
	ErrDevMongoDBFindDocument     = "failed to find document in MongoDB"
	ErrDevMongoDBInsertDocument   = "failed to insert document into MongoDB"
	ErrDevMongoDBUpdateDocument   = "failed to update document in MongoDB"
	ErrDevQueryAppointments       = "failed to query appointments for due window"
	ErrDevNoCredential            = "no usable credential for user"
	ErrDevTokenRefresh            = "failed to refresh access token"
	ErrDevCalendarProbe           = "calendar probe request failed"
	ErrDevCalendarCreateEvent     = "failed to create calendar event"
	ErrDevNoConferenceLink        = "calendar response contains no conference entry point"
	ErrDevPersistMeetingLink      = "failed to persist meeting link onto appointment"
	ErrDevPersistCredential       = "failed to persist credential state"
	ErrDevUserNotExists           = "user does not exist"
	ErrDevRedisSet                = "failed to set value in redis"
	ErrDevRedisGet                = "failed to get value from redis"
	ErrDevRedisDelete             = "failed to delete value from redis"
	ErrDevRedisUnlock             = "failed to release redis lock"
	ErrDevInvalidAPIKey           = "invalid API key"
	ErrDevUnknown                 = "unknown"
)

const ResponseUnknown = "unknown"
