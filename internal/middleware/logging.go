package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging logs one line per response; the level follows the status code.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case rec.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			log.Log(r.Context(), level, "response",
				slog.Group("http",
					"method", r.Method,
					"route", routePattern(r),
					"uri", r.RequestURI,
					"status", rec.status,
					"bytes", rec.bytes,
					"duration", time.Since(start),
				),
				"request_id", RequestIDFrom(r.Context()),
			)
		})
	}
}
