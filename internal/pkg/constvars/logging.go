package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingUserIDKey        = "user_id"
	LoggingTaskKey          = "task"
	LoggingReasonKey        = "reason"
	LoggingWindowFromKey    = "window_from"
	LoggingWindowToKey      = "window_to"
	LoggingRedisKey         = "redis_key"
	LoggingLockValueKey     = "lock_value"
	LoggingDurationKey      = "duration"
)
