// Package middleware provides the inbound request pipeline:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → router
//
// with RateLimit mounted on the API routes only.
package middleware

import "net/http"

// statusRecorder remembers the status and size of the response passing
// through it. Recovery, OpenTelemetry, and Logging each wrap the writer once.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
	sent   bool
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.sent {
		return
	}
	s.status, s.sent = code, true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.sent = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
