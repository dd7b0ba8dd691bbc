// Package httpclient is the outbound HTTP client used to reach the content
// service. Each call passes through, in order:
//
//	breaker → limiter → id headers → client span → retry loop → transport
//
// Typical use:
//
//	client := httpclient.New(&cfg.Client, "content-api", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+"/catalogs/clubs.yaml", http.NoBody)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores the request and correlation IDs with
// WithRequestID and WithCorrelationID so they are forwarded downstream.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/campus-web/internal/platform/config"
	"github.com/jsamuelsen11/campus-web/internal/platform/telemetry"
)

// Outbound header names.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// Metric result labels.
const (
	resultOK       = "success"
	resultFailed   = "error"
	resultRejected = "circuit_open"
	resultCanceled = "canceled"
)

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyCorrelationID
)

// WithRequestID stores the inbound request ID for forwarding.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// WithCorrelationID stores the inbound correlation ID for forwarding.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyCorrelationID, id)
}

func idFrom(ctx context.Context, key ctxKey) string {
	id, _ := ctx.Value(key).(string)
	return id
}

// Client wraps http.Client with a circuit breaker, a token-bucket limiter,
// bounded retries, and tracing. The zero value is not usable; call New.
type Client struct {
	transport *http.Client
	baseURL   string
	name      string
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	limiter   *rate.Limiter
	policy    retryPolicy
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// New builds a Client for the downstream service called name. A nil metrics
// disables metric recording; a nil logger falls back to slog.Default.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		transport: &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		name:      name,
		policy:    newRetryPolicy(cfg.Retry),
		metrics:   metrics,
		logger:    logger,
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		burst := max(cfg.RateLimit.BurstSize, 1)
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), burst)
	}

	tripAfter := clampUint32(max(cfg.CircuitBreaker.MaxFailures, 1))
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
		// A caller giving up says nothing about the downstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// Do sends req. A response whose status is not retryable is returned with a
// nil error and an open body. When every attempt ends in a retryable status
// the last response is returned together with an error, and the caller still
// owns its body. Breaker rejections and transport failures return a nil
// response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	started := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for %s rate limit: %w", c.name, err)
			}
		}

		if id := idFrom(ctx, keyRequestID); id != "" {
			req.Header.Set(HeaderRequestID, id)
		}
		if id := idFrom(ctx, keyCorrelationID); id != "" {
			req.Header.Set(HeaderCorrelationID, id)
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.send(spanCtx, req.WithContext(spanCtx))
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.record(ctx, req.Method, time.Since(started), resp, err)
	return resp, err
}

// BaseURL returns the configured base URL without a trailing path.
func (c *Client) BaseURL() string { return c.baseURL }

// Name returns the downstream service name. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string { return c.name }

// HealthCheck derives downstream health from the breaker state. It never
// makes a request.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: circuit breaker in unknown state %v", c.name, state)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(telemetry.TracerName).Start(ctx, req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.name),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	var result string
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = resultRejected
	case errors.Is(err, context.Canceled):
		result = resultCanceled
	case err == nil && status > 0 && status < http.StatusBadRequest:
		result = resultOK
	default:
		result = resultFailed
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
