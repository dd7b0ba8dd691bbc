package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
)

// errPanicked is all the browser learns about a panic.
var errPanicked = errors.New("handler panicked")

// Recovery logs a handler panic with its stack and answers 500 as
// problem+json, unless the handler had already begun its response.
// http.ErrAbortHandler passes through untouched so net/http aborts the
// connection as asked.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				if v := recover(); v != nil {
					recovered(logger, rec, r, v)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}

func recovered(logger *slog.Logger, rec *statusRecorder, r *http.Request, v any) {
	if v == http.ErrAbortHandler { //nolint:errorlint // panic value, not a wrapped error
		panic(v)
	}
	logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("request_id", RequestIDFromContext(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("stack", string(debug.Stack())),
	)
	if !rec.sent {
		dto.WriteErrorResponse(rec, r, errPanicked)
	}
}
