package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/campus-web/internal/platform/config"
	"github.com/jsamuelsen11/campus-web/internal/platform/logging"
)

// jitter spreads each delay over [d*(1-jitter), d*(1+jitter)].
const jitter = 0.25

// errStatus marks an attempt that ended in a retryable status.
var errStatus = errors.New("retryable status")

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	p := retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
	if p.multiplier < 1 {
		p.multiplier = 1
	}
	if p.ceiling < p.initial {
		p.ceiling = p.initial
	}
	return p
}

// delay returns the wait before retry n, where n=1 is the first retry.
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = math.Min(d, float64(p.ceiling))
	d *= 1 + jitter*(2*rand.Float64()-1)
	return time.Duration(math.Max(d, 0))
}

// send runs the attempt loop. Bodies are replayed through req.GetBody,
// which is populated from a buffered copy when the caller did not set it.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ensureReplayable(req); err != nil {
		return nil, err
	}

	var lastErr error
	for n := range c.policy.attempts {
		if n > 0 {
			wait := c.policy.delay(n)
			if ra, ok := retryAfter(lastErr); ok {
				wait = min(ra, c.policy.ceiling)
			}
			if err := c.pause(ctx, req, n, wait, lastErr); err != nil {
				return nil, err
			}
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, fmt.Errorf("rewinding request body: %w", err)
				}
				req.Body = body
			}
		}

		resp, err := c.transport.Do(req)
		switch {
		case err != nil:
			if !retryableErr(err) {
				return nil, err
			}
			lastErr = err
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		case n == c.policy.attempts-1:
			return resp, &statusError{service: c.name, code: resp.StatusCode}
		default:
			lastErr = &statusError{
				service: c.name,
				code:    resp.StatusCode,
				after:   parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
			}
			discard(resp)
		}
	}
	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, n int, wait time.Duration, cause error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying outbound request",
		slog.String("peer_service", c.name),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.policy.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func ensureReplayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}
	buf, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("buffering request body: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	req.Body, _ = req.GetBody()
	req.ContentLength = int64(len(buf))
	return nil
}

// discard drains resp so its connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

// statusError reports a retryable response status.
type statusError struct {
	service string
	code    int
	after   time.Duration
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s answered %d", e.service, e.code)
}

func (e *statusError) Unwrap() error { return errStatus }

func retryAfter(err error) (time.Duration, bool) {
	var se *statusError
	if errors.As(err, &se) && se.after > 0 {
		return se.after, true
	}
	return 0, false
}

// parseRetryAfter reads a Retry-After value in delta-seconds or HTTP-date
// form. Unparseable or past values yield zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// retryableErr reports whether a transport error is worth another attempt.
// Only the caller's own cancellation or deadline stops the loop.
func retryableErr(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
