package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a health failure that limits the service without taking
// it out of rotation: a store whose breaker is probing recovery, or a blob
// store that only attachments depend on. Checkers wrap it in their error.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports the health of one dependency.
type HealthChecker interface {
	// Name identifies the dependency in readiness output
	// ("account-store", "team-store", "task-store", "blob-store").
	Name() string

	// HealthCheck returns nil when healthy. An error wrapping ErrDegraded
	// is reported but does not fail readiness.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
