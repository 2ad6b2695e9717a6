package credentials

import (
	"context"

	"telecare-scheduler/internal/app/contracts"
	"telecare-scheduler/internal/pkg/constvars"
	"telecare-scheduler/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type tokenResolver struct {
	CredentialRepository contracts.CredentialRepository
	CalendarService      contracts.CalendarService
	Log                  *zap.Logger
}

func NewTokenResolver(
	credentialRepository contracts.CredentialRepository,
	calendarService contracts.CalendarService,
	logger *zap.Logger,
) contracts.TokenResolver {
	return &tokenResolver{
		CredentialRepository: credentialRepository,
		CalendarService:      calendarService,
		Log:                  logger,
	}
}

// Resolve walks the credential lifecycle for one user: fetch, probe,
// refresh at most once, invalidate on refresh failure. State transitions
// are persisted before returning so the next tick sees them.
func (s *tokenResolver) Resolve(ctx context.Context, userID string) (string, error) {
	credential, err := s.CredentialRepository.FindByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if credential == nil || !credential.IsValid() {
		s.Log.Info("tokenResolver.Resolve no usable credential",
			zap.String(constvars.LoggingUserIDKey, userID),
		)
		return "", exceptions.ErrNoCredential(userID)
	}

	probeErr := s.CalendarService.Probe(ctx, credential.AccessToken)
	if probeErr == nil {
		return credential.AccessToken, nil
	}

	s.Log.Info("tokenResolver.Resolve probe failed, attempting refresh",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Error(probeErr),
	)

	refreshed, refreshErr := s.CalendarService.RefreshAccessToken(ctx, credential.RefreshToken)
	if refreshErr != nil {
		// Refresh failure means the grant is gone until the user
		// re-consents out-of-band.
		if markErr := s.CredentialRepository.MarkInvalid(ctx, userID); markErr != nil {
			s.Log.Error("tokenResolver.Resolve failed to mark credential invalid",
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.Error(markErr),
			)
		}
		return "", exceptions.ErrTokenRefresh(refreshErr, userID)
	}

	if err := s.CredentialRepository.UpdateAccessToken(ctx, userID, refreshed.AccessToken); err != nil {
		return "", err
	}

	s.Log.Info("tokenResolver.Resolve refreshed access token",
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return refreshed.AccessToken, nil
}
