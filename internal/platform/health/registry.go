// Package health runs the readiness checks registered at startup.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/campus-web/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds the checkers behind GET /health/ready. It is safe for
// concurrent use.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
	order    []string
}

// New returns an empty registry. Each check gets at most timeout to answer;
// zero leaves the caller's deadline as the only bound.
func New(timeout time.Duration) *Registry {
	return &Registry{
		timeout:  timeout,
		checkers: make(map[string]ports.HealthChecker),
	}
}

// Register adds checker. A checker with an already registered name replaces
// the earlier one.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if _, ok := r.checkers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// Names returns the registered check names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// CheckAll runs all checks concurrently. A check still running when its
// timeout expires is reported as failed.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for name, c := range checkers {
		wg.Go(func() {
			err := r.run(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}
	wg.Wait()
	return results
}

func (r *Registry) run(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout <= 0 {
		return c.HealthCheck(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: no answer within %s: %w", c.Name(), r.timeout, ctx.Err())
	}
}
