package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Kind is an
// extension member carrying the stable domain.Kind clients branch on.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Kind     string        `json:"kind"`
	Reason   string        `json:"reason,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`

	// Saga failures only.
	Operation        string   `json:"operation,omitempty"`
	FailedStep       string   `json:"failed_step,omitempty"`
	InvariantsAtRisk []string `json:"invariants_at_risk,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// internalDetail replaces the text of unclassified errors, which may carry
// store addresses or SQL.
const internalDetail = "internal error; see server logs for the request ID"

// NewErrorResponse builds the problem document for err. Instance is the
// request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	kind := domain.KindOf(err)
	status := KindToStatus(kind)
	detail := err.Error()
	if kind == domain.KindInternal {
		detail = internalDetail
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Kind:     string(kind),
		Reason:   string(domain.ReasonOf(err)),
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	var serr *domain.SagaError
	if errors.As(err, &serr) {
		resp.Operation = serr.Operation
		resp.FailedStep = serr.Step
		resp.InvariantsAtRisk = serr.AtRisk
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	if resp.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="teamtasks"`)
	}
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// KindToStatus maps an error kind to its HTTP status code. A compensated
// partial failure is retryable (503); an uncompensated one is not (500).
func KindToStatus(kind domain.Kind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindUnauthorized:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindValidationFailed:
		return http.StatusBadRequest
	case domain.KindPartialCompensated:
		return http.StatusServiceUnavailable
	case domain.KindUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
