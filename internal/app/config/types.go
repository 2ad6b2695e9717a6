package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
		// WorkerStop if set will be called during Shutdown to gracefully
		// stop the cron scheduler worker
		WorkerStop func()
	}

	InternalConfig struct {
		App       App
		Google    Google
		Scheduler Scheduler
	}

	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
		SchedulerAPIKey string `validate:"required"`
	}

	Google struct {
		ClientID          string `validate:"required"`
		ClientSecret      string `validate:"required"`
		CalendarID        string
		RequestsPerSecond float64
		Burst             int
	}

	Scheduler struct {
		CronSpec                   string
		TickTimeoutInSeconds       int
		MaxConcurrent              int
		MeetLinkWindowInMinutes    int
		ReminderLeadInHours        int
		ReminderToleranceInMinutes int
		LeaderLockTTLInSeconds     int
	}

	MongoDB struct {
		Port     string
		Host     string `validate:"required"`
		DbName   string `validate:"required"`
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped scheduler worker")
	}

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
