// Package httpclient is the outbound HTTP client for the account, team and
// task stores. Every store gets its own Client and with it its own circuit
// breaker, rate limiter and retry budget, so one slow store cannot starve
// calls to the others.
//
// A call passes through, in order:
//
//	circuit breaker → rate limiter → request/correlation IDs → client span → retry → net/http
//
// Only idempotent methods are retried. A POST is sent once, so a timed-out
// create surfaces as a failure instead of a duplicate record.
//
//	client := httpclient.New(&cfg.Stores.Teams, "team-store", metrics, logger)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Outcome labels on the client request metrics.
const (
	outcomeSuccess     = "success"
	outcomeRejected    = "rejected" // 4xx: the store answered, just not yes
	outcomeServerError = "server_error"
	outcomeCircuitOpen = "circuit_open"
	outcomeCanceled    = "canceled"
	outcomeTransport   = "transport_error"
)

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client calls one store.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil means unlimited
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
}

// New builds the client for one store. serviceName names the store in
// spans, metrics, breaker logs and health reports. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		// A caller that gave up says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("store circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// Do sends req to the store.
//
// On a non-retryable status resp is returned with an open body and a nil
// error; 4xx answers are not failures here, the ACL translates them. When
// retries run out on a retryable status, both resp (body open) and err are
// non-nil. A breaker rejection or transport failure returns a nil resp.
// The caller closes any non-nil resp.Body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}
		injectIDs(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		req = req.WithContext(spanCtx)
		err := c.doWithRetry(spanCtx, req, &resp)
		endSpan(span, resp, err)
		return struct{}{}, err
	})

	c.record(ctx, method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the store's base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the store name, e.g. "team-store".
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reads the breaker state without calling the store. Half-open
// wraps ports.ErrDegraded; open is a hard failure.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w (circuit breaker half-open)", c.serviceName, ports.ErrDegraded)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// record is called outside the breaker so rejections are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(resp, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func outcome(resp *http.Response, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return outcomeCircuitOpen
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	case resp == nil:
		if err == nil {
			return outcomeSuccess
		}
		return outcomeTransport
	case resp.StatusCode >= http.StatusInternalServerError, resp.StatusCode == http.StatusTooManyRequests:
		return outcomeServerError
	case resp.StatusCode >= http.StatusBadRequest:
		return outcomeRejected
	default:
		return outcomeSuccess
	}
}

// toUint32 clamps v into uint32; negatives become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
