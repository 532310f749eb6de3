// Package authz decides what a principal may do to a task. Decisions are
// pure functions of the principal and the task record: they never touch a
// store and never fail.
package authz

import (
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
)

// Action is something a principal can attempt on a task.
type Action string

const (
	ActionView         Action = "view"
	ActionEdit         Action = "edit"
	ActionDelete       Action = "delete"
	ActionAssign       Action = "assign"
	ActionChangeStatus Action = "change_status"
	ActionComment      Action = "comment"
	ActionAttach       Action = "attach"
	ActionSearch       Action = "search"
)

// Reason tags a decision so callers and logs can tell why it was made.
type Reason string

const (
	ReasonLeader         Reason = "task_leader"
	ReasonAssignee       Reason = "task_assignee"
	ReasonAdminOverride  Reason = "admin_read_override"
	ReasonNotLeader      Reason = "not_task_leader"
	ReasonNotParticipant Reason = "not_leader_or_assignee"
	ReasonAdminOnly      Reason = "admin_only"
	ReasonInactive       Reason = "principal_inactive"
	ReasonUnknownAction  Reason = "unknown_action"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow(r Reason) Decision { return Decision{Allowed: true, Reason: r} }
func deny(r Reason) Decision  { return Decision{Allowed: false, Reason: r} }

// AuthorizeTaskAction decides whether p may perform action on t.
//
//   - edit, delete, assign: the task's leader only.
//   - change_status, comment, attach: the leader or the assignee.
//   - view: the leader, the assignee, or an admin.
//   - search: admins only; a read-only override across all tasks.
//
// Inactive principals are always denied.
func AuthorizeTaskAction(p identity.Principal, t *task.Task, action Action) Decision {
	if !p.Active {
		return deny(ReasonInactive)
	}

	isLeader := t != nil && t.IsLeader(p.UserID)
	isAssignee := t != nil && t.IsAssignee(p.UserID)

	switch action {
	case ActionEdit, ActionDelete, ActionAssign:
		if isLeader {
			return allow(ReasonLeader)
		}
		return deny(ReasonNotLeader)
	case ActionChangeStatus, ActionComment, ActionAttach:
		switch {
		case isLeader:
			return allow(ReasonLeader)
		case isAssignee:
			return allow(ReasonAssignee)
		default:
			return deny(ReasonNotParticipant)
		}
	case ActionView:
		switch {
		case isLeader:
			return allow(ReasonLeader)
		case isAssignee:
			return allow(ReasonAssignee)
		case p.IsAdmin():
			return allow(ReasonAdminOverride)
		default:
			return deny(ReasonNotParticipant)
		}
	case ActionSearch:
		if p.IsAdmin() {
			return allow(ReasonAdminOverride)
		}
		return deny(ReasonAdminOnly)
	default:
		return deny(ReasonUnknownAction)
	}
}
