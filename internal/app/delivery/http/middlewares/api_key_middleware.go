package middlewares

import (
	"net/http"

	"telecare-scheduler/internal/pkg/exceptions"
	"telecare-scheduler/internal/pkg/utils"

	"go.uber.org/zap"
)

const HeaderAPIKey = "x-api-key"

// RequireSchedulerAPIKey guards the trigger endpoint. The scheduler is an
// internal surface; only callers holding the configured key may tick it.
func (m *Middlewares) RequireSchedulerAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(HeaderAPIKey)

		if apiKey == "" || apiKey != m.InternalConfig.App.SchedulerAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		m.Log.Info("API Key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String("endpoint", r.URL.Path),
			zap.String("method", r.Method),
		)

		next.ServeHTTP(w, r)
	})
}
