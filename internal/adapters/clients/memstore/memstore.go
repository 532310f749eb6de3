// Package memstore provides in-process implementations of the three record
// stores. They back the demo profile (stores.mode=memory), the record store
// server's tests, and the orchestrator's tests, where Fault lets a test
// fail any single store call either before or after its write is applied.
package memstore

import (
	"context"
	"sync"
)

// Fault is consulted before every store call with the operation name (for
// example "UpdateUser" or "AddMember"). A non-nil return fails the call
// with that error and leaves the store untouched.
type Fault func(ctx context.Context, op string) error

// faults is embedded by each store.
type faults struct {
	mu    sync.RWMutex
	fault Fault
	lost  Fault
}

// SetFault installs f, replacing any previous fault. Pass nil to clear.
func (f *faults) SetFault(fn Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fault = fn
}

// SetLostResponse installs a Fault consulted after a write has been
// applied. A non-nil return is handed to the caller in place of the result,
// as when a store commits but the response never arrives. Pass nil to clear.
func (f *faults) SetLostResponse(fn Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lost = fn
}

func (f *faults) respond(ctx context.Context, op string) error {
	f.mu.RLock()
	fn := f.lost
	f.mu.RUnlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, op)
}

func (f *faults) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.RLock()
	fn := f.fault
	f.mu.RUnlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, op)
}

// FailOn returns a Fault that fails every call to one of ops with err.
func FailOn(err error, ops ...string) Fault {
	set := make(map[string]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}
	return func(_ context.Context, op string) error {
		if set[op] {
			return err
		}
		return nil
	}
}

// FailNth returns a Fault that fails only the nth call (1-based) to op.
func FailNth(err error, op string, n int) Fault {
	var (
		mu    sync.Mutex
		calls int
	)
	return func(_ context.Context, got string) error {
		if got != op {
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == n {
			return err
		}
		return nil
	}
}
