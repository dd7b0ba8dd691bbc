package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/campus-web/internal/platform/logging"
)

// Logging puts a logger tagged with the request and correlation IDs into
// the context for handlers and services, then writes one "request completed"
// line per request. 5xx lines log at error, 4xx at warn. Probes under
// /health/ log at debug, everything else at info. At debug the incoming
// headers are logged too, with credentials masked.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			ctx := r.Context()
			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLog)
			reqLog.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLog.LogAttrs(ctx, levelFor(r.URL.Path, rec.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(began)),
			)
		})
	}
}

func levelFor(path string, status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	if status >= http.StatusBadRequest {
		return slog.LevelWarn
	}
	if strings.HasPrefix(path, "/health/") {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
