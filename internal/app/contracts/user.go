package contracts

import (
	"context"

	"telecare-scheduler/internal/app/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
}
