package config

import (
	"telecare-scheduler/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telecare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SchedulerAPIKey: utils.GetEnvString("APP_SCHEDULER_API_KEY", ""),
		},
		Google: Google{
			ClientID:          utils.GetEnvString("GOOGLE_CLIENT_ID", ""),
			ClientSecret:      utils.GetEnvString("GOOGLE_CLIENT_SECRET", ""),
			CalendarID:        utils.GetEnvString("GOOGLE_CALENDAR_ID", "primary"),
			RequestsPerSecond: utils.GetEnvFloat("GOOGLE_CALENDAR_REQUESTS_PER_SECOND", 5.0),
			Burst:             utils.GetEnvInt("GOOGLE_CALENDAR_BURST", 10),
		},
		Scheduler: Scheduler{
			CronSpec:                   utils.GetEnvString("SCHEDULER_CRON_SPEC", "@every 1m"),
			TickTimeoutInSeconds:       utils.GetEnvInt("SCHEDULER_TICK_TIMEOUT_IN_SECONDS", 50),
			MaxConcurrent:              utils.GetEnvInt("SCHEDULER_MAX_CONCURRENT", 4),
			MeetLinkWindowInMinutes:    utils.GetEnvInt("SCHEDULER_MEET_LINK_WINDOW_IN_MINUTES", 30),
			ReminderLeadInHours:        utils.GetEnvInt("SCHEDULER_REMINDER_LEAD_IN_HOURS", 72),
			ReminderToleranceInMinutes: utils.GetEnvInt("SCHEDULER_REMINDER_TOLERANCE_IN_MINUTES", 30),
			LeaderLockTTLInSeconds:     utils.GetEnvInt("SCHEDULER_LEADER_LOCK_TTL_IN_SECONDS", 120),
		},
	}
}
