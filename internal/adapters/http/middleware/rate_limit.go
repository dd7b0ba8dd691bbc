package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/domain"
)

// limiterIdleTTL is how long a client's bucket is kept after its last request.
const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters holds one token bucket per client address.
type clientLimiters struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

// reserve takes a token for key and returns how long the caller would have
// to wait for it. A zero delay means the request may proceed.
func (c *clientLimiters) reserve(key string) time.Duration {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.lastSweep) > limiterIdleTTL {
		for k, cl := range c.clients {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(c.clients, k)
			}
		}
		c.lastSweep = now
	}

	cl, ok := c.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(c.limit, c.burst)}
		c.clients[key] = cl
	}
	cl.lastSeen = now

	res := cl.limiter.ReserveN(now, 1)
	delay := res.DelayFrom(now)
	if delay > 0 {
		res.CancelAt(now)
	}
	return delay
}

// RateLimit returns middleware that throttles each client address to rps
// requests per second with the given burst. A request over the limit gets an
// RFC 9457 429 response with a Retry-After header. A non-positive rps
// disables the limiter.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	return rateLimit(rps, burst, time.Now)
}

func rateLimit(rps float64, burst int, now func() time.Time) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiters := &clientLimiters{
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     now,
		clients: make(map[string]*clientLimiter),
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if delay := limiters.reserve(clientAddr(r)); delay > 0 {
				secs := int(math.Ceil(delay.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				dto.WriteErrorResponse(w, r, domain.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientAddr returns the host part of the request's remote address.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
