package contracts

import (
	"context"

	"telecare-scheduler/internal/app/models"
)

type CredentialRepository interface {
	// FindByUserID returns (nil, nil) when the user has no credential.
	FindByUserID(ctx context.Context, userID string) (*models.Credential, error)
	UpdateAccessToken(ctx context.Context, userID, accessToken string) error
	MarkInvalid(ctx context.Context, userID string) error
}

// TokenResolver resolves a usable access token for a user, refreshing or
// invalidating the stored credential as needed. At most one refresh call
// per invocation; every state transition is persisted before returning.
type TokenResolver interface {
	Resolve(ctx context.Context, userID string) (string, error)
}
