// Package acl implements the Anti-Corruption Layer in front of the three
// record stores. Each store has a client here (AccountClient, TeamClient,
// TaskClient) and a wire subpackage (acl/accounts, acl/teams, acl/tasks)
// holding its DTOs and translators. Shared request plumbing and error
// mapping live in this package.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 64 << 10

// storeProblem is the part of a store's problem document the ACL reads.
type storeProblem struct {
	Detail string         `json:"detail"`
	Reason string         `json:"reason"`
	Errors []fieldProblem `json:"errors"`
}

type fieldProblem struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a store's error response to a domain error.
//
// The status code picks the sentinel. A problem document may refine it: a
// known reason ("already_exists", "not_eligible", ...) yields the matching
// refinement, and field errors on a 400/422 yield a *domain.ValidationError.
//
// Stores never authorize end users, so a 401 or 403 from one means the
// orchestrator itself was refused and is reported as unavailability.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)

	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	var base error
	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		base = domain.ErrNotFound
	case code == http.StatusConflict:
		base = domain.ErrConflict
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		if len(p.Errors) > 0 {
			return fieldErrors(p.Errors)
		}
		base = domain.ErrValidation
	case code >= http.StatusInternalServerError,
		code == http.StatusUnauthorized,
		code == http.StatusForbidden,
		code == http.StatusTooManyRequests:
		return fmt.Errorf("%s (status %d): %w", detail, code, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}

	// A reason only counts when it refines the sentinel the status chose.
	if refined := domain.ReasonError(domain.Reason(p.Reason)); refined != nil && errors.Is(refined, base) {
		base = refined
	}
	return fmt.Errorf("%s: %w", detail, base)
}

// transportError wraps a failure that produced no usable response (network
// error, timeout, open circuit breaker, rate limiter gave up).
func transportError(method, path string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnavailable, err)
}

// readProblem decodes a problem+json body. Anything else, or a body that
// does not decode, yields the zero value.
func readProblem(resp *http.Response) storeProblem {
	var p storeProblem
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&p); err != nil {
		return storeProblem{}
	}
	return p
}

// fieldErrors builds a ValidationError keyed by field name, without the
// "body." location prefix.
func fieldErrors(problems []fieldProblem) *domain.ValidationError {
	fields := make(map[string]string, len(problems))
	for _, fp := range problems {
		fields[strings.TrimPrefix(fp.Location, "body.")] = fp.Message
	}
	return &domain.ValidationError{Fields: fields}
}
