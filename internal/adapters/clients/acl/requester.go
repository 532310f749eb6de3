package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/teamtasks/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for the store clients:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status code validation, error translation, and
// JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes an HTTP request against the configured base URL.
//
// It marshals reqBody to JSON (if non-nil), sends the request, validates the
// status code matches wantStatus, and decodes the response body into respBody
// (if non-nil). For calls where no response body is expected, pass nil for
// respBody.
//
// On non-matching status codes, the response is passed to TranslateHTTPError.
// Failures that produce no response are wrapped as domain.ErrUnavailable.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	switch method {
	case http.MethodGet, http.MethodDelete, http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}

	body := io.Reader(http.NoBody)
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, wantStatus, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// Name returns the store name the underlying client was built with.
func (r *Requester) Name() string {
	return r.client.Name()
}

// HealthCheck delegates to the underlying client's circuit breaker.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status. Translate the response in that case so the
		// store's problem detail is kept.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "store request failed",
			slog.String("store", r.client.Name()),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return transportError(req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		level := slog.LevelWarn
		if resp.StatusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r.logger.Log(ctx, level, "unexpected store status",
			slog.String("store", r.client.Name()),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
