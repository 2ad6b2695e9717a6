package contracts

import (
	"context"

	"telecare-scheduler/internal/app/models"
)

// SchedulerUsecase runs one tick: the meet-link sub-task and the reminder
// sub-task, isolated from each other, folded into a single summary.
type SchedulerUsecase interface {
	RunTick(ctx context.Context) *models.TickResult
}
