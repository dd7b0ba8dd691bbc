package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func serve(h http.Handler, remote string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/contactForm/submit", http.NoBody)
	req.RemoteAddr = remote
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_PerClientBurst(t *testing.T) {
	t.Parallel()

	clock := &stepClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	h := rateLimit(1, 2, clock.Now)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := range 2 {
		if rec := serve(h, "10.0.0.1:5000"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec := serve(h, "10.0.0.1:5001")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want 1", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	if rec := serve(h, "10.0.0.2:5000"); rec.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", rec.Code)
	}

	clock.Advance(time.Second)
	if rec := serve(h, "10.0.0.1:5002"); rec.Code != http.StatusOK {
		t.Errorf("status after refill = %d, want 200", rec.Code)
	}
}

func TestRateLimit_RejectedRequestDoesNotConsume(t *testing.T) {
	t.Parallel()

	clock := &stepClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	h := rateLimit(1, 1, clock.Now)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve(h, "10.0.0.1:1")
	for range 5 {
		serve(h, "10.0.0.1:1")
	}
	clock.Advance(time.Second)
	if rec := serve(h, "10.0.0.1:1"); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 once the bucket refills", rec.Code)
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	calls := 0
	h := RateLimit(0, 0)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	for range 50 {
		serve(h, "10.0.0.1:1")
	}
	if calls != 50 {
		t.Errorf("calls = %d, want 50", calls)
	}
}

func TestRateLimit_EvictsIdleClients(t *testing.T) {
	t.Parallel()

	clock := &stepClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	limiters := &clientLimiters{limit: 1, burst: 1, now: clock.Now, clients: map[string]*clientLimiter{}}

	limiters.reserve("a")
	limiters.reserve("b")
	clock.Advance(limiterIdleTTL + time.Second)
	limiters.reserve("c")

	if n := len(limiters.clients); n != 1 {
		t.Errorf("len(clients) = %d, want 1 after sweep", n)
	}
}
