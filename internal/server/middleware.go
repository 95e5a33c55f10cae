package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// requestLogger logs one line per request with method, path, status,
// duration, and a generated request id. The id is echoed back in the
// X-Request-Id header so client-side reports can be matched to server logs.
func requestLogger(logger *log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.NewString()
			w.Header().Set("X-Request-Id", reqID)

			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Info("handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", m.Code,
				"duration", m.Duration,
				"request_id", reqID,
			)
		})
	}
}
