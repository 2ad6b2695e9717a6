package routers

import (
	"telecare-scheduler/internal/app/delivery/http/middlewares"
	"telecare-scheduler/internal/app/services/core/scheduler"

	"github.com/go-chi/chi/v5"
)

func attachSchedulerRoutes(router chi.Router, middlewares *middlewares.Middlewares, schedulerController *scheduler.SchedulerController) {
	router.With(middlewares.RequireSchedulerAPIKey).Post("/tick", schedulerController.RunTick)
}
