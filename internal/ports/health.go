package ports

import "context"

// HealthChecker is a component that can report whether it is usable, such
// as the loaded catalog set or the remote content service.
type HealthChecker interface {
	// Name labels the check in readiness output.
	Name() string
	// HealthCheck returns nil when healthy. It must return promptly once
	// ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for the
// readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every check and returns each result under the
	// checker's name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
