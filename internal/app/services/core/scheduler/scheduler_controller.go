package scheduler

import (
	"net/http"
	"time"

	"telecare-scheduler/internal/app/contracts"
	"telecare-scheduler/internal/pkg/constvars"
	"telecare-scheduler/internal/pkg/dto/responses"
	"telecare-scheduler/internal/pkg/utils"

	"go.uber.org/zap"
)

type SchedulerController struct {
	Log              *zap.Logger
	SchedulerUsecase contracts.SchedulerUsecase
}

func NewSchedulerController(logger *zap.Logger, schedulerUsecase contracts.SchedulerUsecase) *SchedulerController {
	return &SchedulerController{
		Log:              logger,
		SchedulerUsecase: schedulerUsecase,
	}
}

// RunTick handles the external trigger. The caller only ever sees the
// aggregate summary; per-record failure detail goes to logs.
func (c *SchedulerController) RunTick(w http.ResponseWriter, r *http.Request) {
	result := c.SchedulerUsecase.RunTick(r.Context())

	response := &responses.TickResponse{
		Success:       result.Success(),
		Timestamp:     time.Now().Format(time.RFC3339),
		ExecutionTime: result.ExecutionTimeMS,
		MeetLink:      taskSummary(result.MeetLink.Found, result.MeetLink.Succeeded, result.MeetLink.Failed, result.MeetLink.Skipped, result.MeetLink.Error),
		Reminder:      taskSummary(result.Reminder.Found, result.Reminder.Succeeded, result.Reminder.Failed, result.Reminder.Skipped, result.Reminder.Error),
	}

	if result.Success() {
		response.Message = "Scheduler tick completed"
		utils.BuildJSONResponse(w, constvars.StatusOK, response)
		return
	}

	response.Message = "Scheduler tick completed with task errors"
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func taskSummary(found, succeeded, failed, skipped int, taskErr string) *responses.TaskSummary {
	return &responses.TaskSummary{
		Found:     found,
		Succeeded: succeeded,
		Failed:    failed,
		Skipped:   skipped,
		Error:     taskErr,
	}
}
