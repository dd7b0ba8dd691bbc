package middleware

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
)

// Timeout bounds each request to d. The handler's output is held back until
// it returns; if d elapses first the client gets a problem+json 504 and any
// later writes from the handler fail with http.ErrHandlerTimeout. A
// non-positive d disables the limit.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			dw := &deferredWriter{header: make(http.Header)}
			finished := make(chan struct{})
			go func() {
				defer close(finished)
				next.ServeHTTP(dw, r)
			}()

			select {
			case <-finished:
				dw.mu.Lock()
				defer dw.mu.Unlock()
				dw.copyTo(w)
			case <-ctx.Done():
				dw.mu.Lock()
				defer dw.mu.Unlock()
				dw.expired = true
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, ctx.Err()))
			}
		})
	}
}

// deferredWriter collects a response in memory. It is shared between the
// handler goroutine and Timeout, so every access holds mu.
type deferredWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	code    int
	expired bool
}

func (d *deferredWriter) Header() http.Header {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.header
}

func (d *deferredWriter) WriteHeader(code int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.code == 0 && !d.expired {
		d.code = code
	}
}

func (d *deferredWriter) Write(b []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.expired {
		return 0, http.ErrHandlerTimeout
	}
	if d.code == 0 {
		d.code = http.StatusOK
	}
	return d.body.Write(b)
}

// copyTo replays the collected response. Callers hold mu.
func (d *deferredWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), d.header)
	if d.code != 0 {
		w.WriteHeader(d.code)
	}
	_, _ = w.Write(d.body.Bytes())
}
