package domain

import "errors"

// Kind is the stable, machine-readable classification of an error returned
// by an orchestrator operation. Clients branch on Kind, never on messages.
type Kind string

// Error kinds.
const (
	KindUnauthenticated      Kind = "unauthenticated"
	KindUnauthorized         Kind = "unauthorized"
	KindNotFound             Kind = "not_found"
	KindConflict             Kind = "conflict"
	KindValidationFailed     Kind = "validation_failed"
	KindPartialCompensated   Kind = "partial_failure_compensated"
	KindPartialUncompensated Kind = "partial_failure_uncompensated"
	KindUnavailable          Kind = "unavailable"
	KindInternal             Kind = "internal"
)

// KindOf classifies err. Saga outcomes take precedence over the cause they
// wrap, so a compensated failure caused by a timeout is still reported as
// compensated.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUncompensated):
		return KindPartialUncompensated
	case errors.Is(err, ErrCompensated):
		return KindPartialCompensated
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindUnauthorized
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValidation):
		return KindValidationFailed
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	default:
		return KindInternal
	}
}

// Reason is a finer, still stable, tag under a Kind. Stores send it on the
// wire so that a refinement such as ErrAlreadyExists survives the hop.
type Reason string

// Error reasons.
const (
	ReasonAlreadyExists     Reason = "already_exists"
	ReasonNotEligible       Reason = "not_eligible"
	ReasonStatusUnchanged   Reason = "status_unchanged"
	ReasonScopeRequired     Reason = "scope_required"
	ReasonInactivePrincipal Reason = "inactive_principal"
)

var reasonErrors = []struct {
	reason Reason
	err    error
}{
	{ReasonAlreadyExists, ErrAlreadyExists},
	{ReasonNotEligible, ErrNotEligible},
	{ReasonStatusUnchanged, ErrNoOpTransition},
	{ReasonScopeRequired, ErrScopeRequired},
	{ReasonInactivePrincipal, ErrInactivePrincipal},
}

// ReasonOf returns the refinement err matches, or "" for a bare sentinel.
// Saga errors carry no reason of their own.
func ReasonOf(err error) Reason {
	if err == nil || errors.Is(err, ErrCompensated) || errors.Is(err, ErrUncompensated) {
		return ""
	}
	for _, re := range reasonErrors {
		if errors.Is(err, re.err) {
			return re.reason
		}
	}
	return ""
}

// ReasonError returns the refinement sentinel for r, or nil if r is unknown.
func ReasonError(r Reason) error {
	for _, re := range reasonErrors {
		if re.reason == r {
			return re.err
		}
	}
	return nil
}
