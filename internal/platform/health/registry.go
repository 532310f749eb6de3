// Package health keeps the readiness checks for the three stores, the
// attachment blob store and anything else the orchestrator cannot serve
// without.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds each check.
const DefaultCheckTimeout = 2 * time.Second

// Registry runs its checks concurrently, each under its own timeout, so one
// hung store cannot stall the readiness probe. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New returns an empty registry using DefaultCheckTimeout.
func New() *Registry {
	return &Registry{timeout: DefaultCheckTimeout}
}

// WithTimeout sets the per-check timeout; non-positive values are ignored.
func (r *Registry) WithTimeout(d time.Duration) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d > 0 {
		r.timeout = d
	}
	return r
}

func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll maps each checker name to its result, nil meaning healthy. Of two
// checkers sharing a name, the later registration is reported.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	timeout := r.timeout
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			errs[i] = c.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
