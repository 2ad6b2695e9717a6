package credentials

import (
	"context"
	"errors"
	"testing"

	"telecare-scheduler/internal/app/contracts"
	"telecare-scheduler/internal/app/models"
	"telecare-scheduler/internal/pkg/constvars"
	"telecare-scheduler/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) FindByUserID(ctx context.Context, userID string) (*models.Credential, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Credential), args.Error(1)
}

func (m *MockCredentialRepository) UpdateAccessToken(ctx context.Context, userID, accessToken string) error {
	args := m.Called(ctx, userID, accessToken)
	return args.Error(0)
}

func (m *MockCredentialRepository) MarkInvalid(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) Probe(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *MockCalendarService) CreateEvent(ctx context.Context, accessToken string, spec *contracts.CalendarEventSpec) (*contracts.CalendarEventResult, error) {
	args := m.Called(ctx, accessToken, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.CalendarEventResult), args.Error(1)
}

func (m *MockCalendarService) RefreshAccessToken(ctx context.Context, refreshToken string) (*contracts.RefreshedToken, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.RefreshedToken), args.Error(1)
}

func TestTokenResolver_Resolve(t *testing.T) {
	logger := zap.NewNop()

	t.Run("No Stored Credential", func(t *testing.T) {
		credentialRepo := new(MockCredentialRepository)
		calendarService := new(MockCalendarService)
		credentialRepo.On("FindByUserID", mock.Anything, "user-1").Return(nil, nil)

		resolver := NewTokenResolver(credentialRepo, calendarService, logger)
		token, err := resolver.Resolve(context.Background(), "user-1")

		assert.Empty(t, token)
		assert.Equal(t, constvars.ReasonNoCredential, exceptions.ReasonOf(err))
		calendarService.AssertNotCalled(t, "Probe")
		calendarService.AssertNotCalled(t, "RefreshAccessToken")
	})

	t.Run("Invalid Credential Skips Refresh", func(t *testing.T) {
		credentialRepo := new(MockCredentialRepository)
		calendarService := new(MockCalendarService)
		credentialRepo.On("FindByUserID", mock.Anything, "user-1").Return(&models.Credential{
			UserID:       "user-1",
			AccessToken:  "stale",
			RefreshToken: "refresh",
			Status:       constvars.CredentialStatusInvalid,
		}, nil)

		resolver := NewTokenResolver(credentialRepo, calendarService, logger)
		token, err := resolver.Resolve(context.Background(), "user-1")

		assert.Empty(t, token)
		assert.Equal(t, constvars.ReasonNoCredential, exceptions.ReasonOf(err))
		calendarService.AssertNotCalled(t, "Probe")
		calendarService.AssertNotCalled(t, "RefreshAccessToken")
	})

	t.Run("Probe Succeeds Returns Stored Token", func(t *testing.T) {
		credentialRepo := new(MockCredentialRepository)
		calendarService := new(MockCalendarService)
		credentialRepo.On("FindByUserID", mock.Anything, "user-1").Return(&models.Credential{
			UserID:      "user-1",
			AccessToken: "still-good",
			Status:      constvars.CredentialStatusValid,
		}, nil)
		calendarService.On("Probe", mock.Anything, "still-good").Return(nil)

		resolver := NewTokenResolver(credentialRepo, calendarService, logger)
		token, err := resolver.Resolve(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "still-good", token)
		calendarService.AssertNotCalled(t, "RefreshAccessToken")
		credentialRepo.AssertNotCalled(t, "UpdateAccessToken")
	})

	t.Run("Probe Fails Refresh Succeeds", func(t *testing.T) {
		credentialRepo := new(MockCredentialRepository)
		calendarService := new(MockCalendarService)
		credentialRepo.On("FindByUserID", mock.Anything, "user-1").Return(&models.Credential{
			UserID:       "user-1",
			AccessToken:  "expired",
			RefreshToken: "refresh-token",
			Status:       constvars.CredentialStatusValid,
		}, nil)
		calendarService.On("Probe", mock.Anything, "expired").Return(errors.New("401"))
		calendarService.On("RefreshAccessToken", mock.Anything, "refresh-token").Return(&contracts.RefreshedToken{
			AccessToken: "fresh",
		}, nil)
		credentialRepo.On("UpdateAccessToken", mock.Anything, "user-1", "fresh").Return(nil)

		resolver := NewTokenResolver(credentialRepo, calendarService, logger)
		token, err := resolver.Resolve(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "fresh", token)
		calendarService.AssertNumberOfCalls(t, "RefreshAccessToken", 1)
		credentialRepo.AssertCalled(t, "UpdateAccessToken", mock.Anything, "user-1", "fresh")
		credentialRepo.AssertNotCalled(t, "MarkInvalid")
	})

	t.Run("Probe Fails Refresh Fails Marks Invalid", func(t *testing.T) {
		credentialRepo := new(MockCredentialRepository)
		calendarService := new(MockCalendarService)
		credentialRepo.On("FindByUserID", mock.Anything, "user-1").Return(&models.Credential{
			UserID:       "user-1",
			AccessToken:  "expired",
			RefreshToken: "revoked",
			Status:       constvars.CredentialStatusValid,
		}, nil)
		calendarService.On("Probe", mock.Anything, "expired").Return(errors.New("401"))
		calendarService.On("RefreshAccessToken", mock.Anything, "revoked").Return(nil, errors.New("invalid_grant"))
		credentialRepo.On("MarkInvalid", mock.Anything, "user-1").Return(nil)

		resolver := NewTokenResolver(credentialRepo, calendarService, logger)
		token, err := resolver.Resolve(context.Background(), "user-1")

		assert.Empty(t, token)
		assert.Equal(t, constvars.ReasonTokenRefreshFailed, exceptions.ReasonOf(err))
		calendarService.AssertNumberOfCalls(t, "RefreshAccessToken", 1)
		credentialRepo.AssertCalled(t, "MarkInvalid", mock.Anything, "user-1")
		credentialRepo.AssertNotCalled(t, "UpdateAccessToken")
	})
}
