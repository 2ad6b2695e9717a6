package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"telecare-scheduler/internal/app/config"
	"telecare-scheduler/internal/app/delivery/http/middlewares"
	"telecare-scheduler/internal/app/models"
	"telecare-scheduler/internal/app/services/core/scheduler"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSchedulerUsecase struct {
	mock.Mock
}

func (m *MockSchedulerUsecase) RunTick(ctx context.Context) *models.TickResult {
	args := m.Called(ctx)
	return args.Get(0).(*models.TickResult)
}

func setupTestRouter(usecase *MockSchedulerUsecase) (*chi.Mux, *config.InternalConfig) {
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:         "v1",
			EndpointPrefix:  "api",
			MaxRequests:     100,
			SchedulerAPIKey: "test-scheduler-key",
		},
	}

	logger := zap.NewNop()
	schedulerController := scheduler.NewSchedulerController(logger, usecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewareInstance, schedulerController)
	return router, internalConfig
}

func TestSchedulerTickEndpoint(t *testing.T) {
	t.Run("Valid API Key", func(t *testing.T) {
		usecase := new(MockSchedulerUsecase)
		usecase.On("RunTick", mock.Anything).Return(&models.TickResult{})

		router, _ := setupTestRouter(usecase)

		request := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/tick", nil)
		request.Header.Set("x-api-key", "test-scheduler-key")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"success":true`)
		usecase.AssertNumberOfCalls(t, "RunTick", 1)
	})

	t.Run("Missing API Key", func(t *testing.T) {
		usecase := new(MockSchedulerUsecase)

		router, _ := setupTestRouter(usecase)

		request := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/tick", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		usecase.AssertNotCalled(t, "RunTick")
	})

	t.Run("Wrong API Key", func(t *testing.T) {
		usecase := new(MockSchedulerUsecase)

		router, _ := setupTestRouter(usecase)

		request := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/tick", nil)
		request.Header.Set("x-api-key", "not-the-key")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		usecase.AssertNotCalled(t, "RunTick")
	})

	t.Run("Task Errors Still Return 200", func(t *testing.T) {
		usecase := new(MockSchedulerUsecase)
		usecase.On("RunTick", mock.Anything).Return(&models.TickResult{
			MeetLink: models.TaskReport{Error: "appointment query failed"},
		})

		router, _ := setupTestRouter(usecase)

		request := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/tick", nil)
		request.Header.Set("x-api-key", "test-scheduler-key")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"success":false`)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter(new(MockSchedulerUsecase))

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
