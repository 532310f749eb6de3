package domain

import "context"

// Action is one step of a multi-step operation that spans stores. Steps are
// executed in order and, on failure, completed steps are compensated in
// reverse order.
//
// Action lives in the domain layer so that step definitions do not depend on
// the engine that runs them.
type Action interface {
	// Execute performs the step. Implementations must respect the context
	// deadline; a step that times out is a failed step.
	Execute(ctx context.Context) error

	// Rollback compensates Execute. It runs after a successful Execute and
	// also after an Execute whose failure leaves open whether the write
	// landed, so it must be idempotent and must succeed when there is
	// nothing to undo. The context is detached from the caller's
	// cancellation.
	Rollback(ctx context.Context) error

	// Description names the step for logs (e.g., "promote user 7 to team leader").
	Description() string
}
