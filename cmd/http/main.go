package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecare-scheduler/internal/app/config"
	"telecare-scheduler/internal/app/delivery/http/middlewares"
	"telecare-scheduler/internal/app/delivery/http/routers"
	"telecare-scheduler/internal/app/drivers/database"
	"telecare-scheduler/internal/app/drivers/logger"
	"telecare-scheduler/internal/app/services/core/appointments"
	"telecare-scheduler/internal/app/services/core/credentials"
	"telecare-scheduler/internal/app/services/core/scheduler"
	"telecare-scheduler/internal/app/services/core/users"
	"telecare-scheduler/internal/app/services/shared/calendar"
	"telecare-scheduler/internal/app/services/shared/locker"
	sharedRedis "telecare-scheduler/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if err := config.Validate(driverConfig, internalConfig); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	calendarService := calendar.NewGoogleCalendarService(bootstrap.InternalConfig, bootstrap.Logger)

	// Repositories
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	credentialRepository := credentials.NewCredentialMongoRepository(bootstrap.MongoDB, dbName)
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)

	// Scheduler
	tokenResolver := credentials.NewTokenResolver(credentialRepository, calendarService, bootstrap.Logger)
	schedulerUsecase := scheduler.NewSchedulerUsecase(
		appointmentRepository,
		userRepository,
		tokenResolver,
		calendarService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	schedulerController := scheduler.NewSchedulerController(bootstrap.Logger, schedulerUsecase)

	// Cron worker
	worker := scheduler.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, schedulerUsecase)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	// Middlewares + routes
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, schedulerController)
}
