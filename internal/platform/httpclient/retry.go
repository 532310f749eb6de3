package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// attempts is how many times a request with this method may be sent.
func (rc retryConfig) attempts(method string) int {
	if !isIdempotent(method) {
		return 1
	}
	return rc.maxAttempts
}

// delay picks the wait before retry number attempt (1 = first retry). A
// store's Retry-After hint wins when it is longer, but never past
// maxInterval.
func (rc retryConfig) delay(attempt int, retryAfter time.Duration) time.Duration {
	return max(backoff(attempt, rc), min(retryAfter, rc.maxInterval))
}

// doWithRetry sends req until a non-retryable answer arrives or the
// attempts run out. The final response lands in *resp so its body stays
// open for the caller.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr    error
		retryAfter time.Duration
		attempts   = c.retryCfg.attempts(req.Method)
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, c.retryCfg.delay(attempt, retryAfter), lastErr); err != nil {
				return err
			}
		}
		rewind(req, body)

		r, err := c.httpClient.Do(req)
		switch {
		case err != nil:
			if !isRetryable(err) {
				return err
			}
			lastErr, retryAfter = err, 0
		case !isRetryableStatus(r.StatusCode):
			*resp = r
			return nil
		default:
			lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
			retryAfter = parseRetryAfter(r.Header.Get("Retry-After"))
			if attempt == attempts-1 {
				*resp = r
				return lastErr
			}
			discard(r)
		}
	}
	return lastErr
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains r so the connection can be reused.
func discard(r *http.Response) {
	_, _ = io.Copy(io.Discard, r.Body)
	_ = r.Body.Close()
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, d time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying store request",
		slog.String("peer_service", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff is initialInterval·multiplier^(attempt-1), capped at maxInterval,
// then jittered.
func backoff(attempt int, cfg retryConfig) time.Duration {
	d := min(float64(cfg.initialInterval)*math.Pow(cfg.multiplier, float64(attempt-1)), float64(cfg.maxInterval))
	d += d * jitterFraction * (2*secureRandFloat64() - 1)
	return time.Duration(max(d, 0))
}

// parseRetryAfter reads the delay-seconds form of Retry-After. HTTP dates
// and junk give zero.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// secureRandFloat64 returns a value in [0, 1) built from the top 53 bits of
// a crypto/rand word.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isRetryable reports whether a transport error is worth another attempt.
// Everything is, except the caller giving up.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isIdempotent reports whether a request with this method can be replayed.
// The stores treat PATCH as "set these fields", so it is replay-safe.
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions,
		http.MethodPut, http.MethodDelete, http.MethodPatch:
		return true
	default:
		return false
	}
}

// isRetryableStatus is true for 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
