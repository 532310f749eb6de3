package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation error")
	ErrUnavailable     = errors.New("unavailable")

	// ErrCompensated marks a multi-step operation that failed part way and
	// was fully rolled back. The caller may retry.
	ErrCompensated = errors.New("partial failure, compensated")

	// ErrUncompensated marks a multi-step operation whose rollback also
	// failed. Cross-store state may violate an invariant until repaired.
	ErrUncompensated = errors.New("partial failure, uncompensated")
)

// Refinements of the sentinels above. Each one matches its parent with
// errors.Is, so transport code only needs to know the parent.
var (
	ErrNotEligible       = fmt.Errorf("%w: user not eligible", ErrConflict)
	ErrAlreadyExists     = fmt.Errorf("%w: already exists", ErrConflict)
	ErrNoOpTransition    = fmt.Errorf("%w: status unchanged", ErrValidation)
	ErrScopeRequired     = fmt.Errorf("%w: scope required", ErrValidation)
	ErrInactivePrincipal = fmt.Errorf("%w: account is not active", ErrUnauthenticated)
)

// IsIndeterminate reports whether a failed store write may still have been
// applied: the store was unreachable or answered 5xx, or the call timed out
// or was cancelled while in flight.
func IsIndeterminate(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SagaError reports the failure of a multi-step operation. Compensated tells
// whether every completed step was rolled back. When it is false, AtRisk
// names the invariants that may be violated until an operator repairs them.
type SagaError struct {
	Operation       string
	Step            string
	Cause           error
	Compensated     bool
	CompensationErr error
	AtRisk          []string
}

func (e *SagaError) Error() string {
	op := e.Operation
	if op == "" {
		op = "operation"
	}
	if e.Compensated {
		return fmt.Sprintf("%s: step %q failed and was compensated: %v", op, e.Step, e.Cause)
	}
	return fmt.Sprintf("%s: step %q failed and compensation failed: %v (compensation: %v)",
		op, e.Step, e.Cause, e.CompensationErr)
}

// Unwrap exposes both the outcome sentinel and the step's cause.
func (e *SagaError) Unwrap() []error {
	outcome := ErrUncompensated
	if e.Compensated {
		outcome = ErrCompensated
	}
	return []error{outcome, e.Cause}
}

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"
