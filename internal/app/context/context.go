// Package appctx provides the operation-scoped context that orchestrator
// operations run in.
//
// A RequestContext memoizes store reads and queues the steps of a
// multi-step operation. Commit runs the steps in order and, if one fails,
// compensates the completed ones in reverse order, starting with the failed
// step itself when its write may have landed:
//
//	rc := appctx.New(ctx, appctx.WithCompensationTimeout(5*time.Second))
//
//	// Reads are memoized for the lifetime of the operation.
//	user, err := appctx.GetOrFetch(rc, "user:7", fetchUser)
//
//	// Steps run at Commit.
//	rc.AddAction(createTeam)
//	rc.AddAction(promoteLeader)
//	err = rc.Commit(ctx) // nil, the first step's error, or a *domain.SagaError
//
// A RequestContext belongs to one operation and must not be reused. It is
// what keeps the orchestrator free of shared in-process state.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on a
// RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// DefaultCompensationTimeout bounds each rollback step when no option
// overrides it.
const DefaultCompensationTimeout = 10 * time.Second

// RequestContext is an operation-scoped context wrapper providing in-memory
// caching and staged step execution. It embeds context.Context.
//
// The cache is NOT safe for concurrent use; the step queue is.
type RequestContext struct {
	context.Context
	cache map[string]cacheEntry

	queueMu   sync.Mutex
	steps     []domain.Action
	committed bool

	compensationTimeout time.Duration
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
type cacheEntry struct {
	value any
	err   error
}

// Option configures a RequestContext.
type Option func(*RequestContext)

// WithCompensationTimeout bounds each rollback step. Rollbacks run on a
// context detached from the caller's cancellation, so this is the only
// deadline they observe.
func WithCompensationTimeout(d time.Duration) Option {
	return func(rc *RequestContext) {
		if d > 0 {
			rc.compensationTimeout = d
		}
	}
}

// New creates a RequestContext wrapping the given context.Context.
// The returned RequestContext has an empty cache and no staged actions.
func New(ctx context.Context, opts ...Option) *RequestContext {
	rc := &RequestContext{
		Context:             ctx,
		cache:               make(map[string]cacheEntry),
		compensationTimeout: DefaultCompensationTimeout,
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached to
// prevent redundant calls within the same operation.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Invalidate drops a cached entry so the next GetOrFetch re-reads the store.
func (rc *RequestContext) Invalidate(key string) {
	delete(rc.cache, key)
}

// DataProvider binds a cache key and fetch function together, allowing
// callers to retrieve data without repeating the key.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it using the provider's fetch
// function.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.key, p.fetchFn)
}

// Key returns the provider's cache key, for use with Invalidate.
func (p *DataProvider[T]) Key() string {
	return p.key
}
