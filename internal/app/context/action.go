package appctx

import "github.com/jsamuelsen11/teamtasks/internal/domain"

// AddAction queues a step for Commit. It fails with ErrNilAction for a nil
// step and ErrAlreadyCommitted once Commit has run. Safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.steps = append(rc.steps, action)
	return nil
}

// Pending returns how many queued steps Commit has not run yet.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return 0
	}
	return len(rc.steps)
}
