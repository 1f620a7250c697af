package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		status := recorder.Status()
		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"route", routeOf(r),
			"status", status,
			"bytes", recorder.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", RequestIDFrom(r.Context()),
		}
		if username := r.Header.Get("username"); username != "" {
			fields = append(fields, "username", username)
		}

		switch {
		case status >= http.StatusInternalServerError:
			m.logs.Errorw("http request", fields...)
		case status >= http.StatusBadRequest:
			m.logs.Warnw("http request", fields...)
		default:
			m.logs.Infow("http request", fields...)
		}
	})
}
