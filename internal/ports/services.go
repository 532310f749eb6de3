package ports

import (
	"context"
	"io"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/invariant"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

// TeamService defines the team operations of the consistency orchestrator.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method revalidates the principal against the Account Store first.
type TeamService interface {
	// CreateTeamWithLeader creates a team led by an eligible member and
	// promotes that member. On a failed promotion the team is deleted again
	// and a *domain.SagaError is returned.
	CreateTeamWithLeader(ctx context.Context, p identity.Principal, req CreateTeamRequest) (*team.Team, error)

	// DeleteTeam deletes a team, then demotes its former leader. A failed
	// demotion does not undo the delete; it is reported in the result.
	DeleteTeam(ctx context.Context, p identity.Principal, teamID int64) (*DeleteTeamResult, error)

	// TransferLeadership makes an existing member the team's leader.
	TransferLeadership(ctx context.Context, p identity.Principal, teamID, newLeaderID int64) (*TransferResult, error)

	// EditTeam changes a team's name or description.
	EditTeam(ctx context.Context, p identity.Principal, teamID int64, patch team.Patch) (*team.Team, error)

	// AddMember adds an eligible user to a team.
	AddMember(ctx context.Context, p identity.Principal, teamID, userID int64) (*team.Team, error)

	// RemoveMember removes a non-leader from a team.
	RemoveMember(ctx context.Context, p identity.Principal, teamID, userID int64) (*team.Team, error)
}

// CreateTeamRequest carries the input of CreateTeamWithLeader.
type CreateTeamRequest struct {
	Name        string
	Description string
	LeaderID    int64
}

// DeleteTeamResult reports what DeleteTeam changed.
type DeleteTeamResult struct {
	TeamID         int64
	FormerLeaderID int64
	LeaderDemoted  bool
}

// TransferResult reports what TransferLeadership changed.
type TransferResult struct {
	Team                *team.Team
	FormerLeaderID      int64
	FormerLeaderDemoted bool
}

// UserService defines the account lifecycle operations of the orchestrator.
type UserService interface {
	// ListUsers returns users matching the filter. Admin only.
	ListUsers(ctx context.Context, p identity.Principal, filter account.Filter) ([]account.User, error)

	// GetUser returns one user. Admins may read anyone; others only themselves.
	GetUser(ctx context.Context, p identity.Principal, id int64) (*account.User, error)

	// ActivateUser marks an account active.
	ActivateUser(ctx context.Context, p identity.Principal, id int64) (*account.User, error)

	// DeactivateUser removes the user from their team, then marks the
	// account inactive. Team leaders must hand over their team first.
	DeactivateUser(ctx context.Context, p identity.Principal, id int64) (*account.User, error)

	// PromoteMember sets the team leader role on a member who already leads
	// exactly one team.
	PromoteMember(ctx context.Context, p identity.Principal, id int64) (*account.User, error)

	// DemoteMember sets the member role on a team leader who leads no team.
	DemoteMember(ctx context.Context, p identity.Principal, id int64) (*account.User, error)
}

// TaskService defines the task operations. Every method is gated by
// authz.AuthorizeTaskAction.
type TaskService interface {
	CreateTask(ctx context.Context, p identity.Principal, t *task.Task) (*task.Task, error)
	GetTask(ctx context.Context, p identity.Principal, id int64) (*task.Task, error)
	EditTask(ctx context.Context, p identity.Principal, id int64, patch task.Patch) (*task.Task, error)
	DeleteTask(ctx context.Context, p identity.Principal, id int64) error
	ChangeStatus(ctx context.Context, p identity.Principal, id int64, status task.Status) (*task.Task, error)
	AddComment(ctx context.Context, p identity.Principal, id int64, body string) (*task.Comment, error)

	// UploadAttachment streams the upload into the Blob Store and records its
	// metadata. It never takes part in compensation.
	UploadAttachment(ctx context.Context, p identity.Principal, taskID int64, upload AttachmentUpload) (*task.Attachment, error)
	ListAttachments(ctx context.Context, p identity.Principal, taskID int64) ([]task.Attachment, error)

	// OpenAttachment returns the metadata and a reader for the content.
	// The caller closes the reader.
	OpenAttachment(ctx context.Context, p identity.Principal, attachmentID int64) (*task.Attachment, io.ReadCloser, error)
}

// AttachmentUpload is a file being uploaded.
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// ReadProjector answers composite queries across stores. It never writes.
type ReadProjector interface {
	// MyTeams returns every team for admins, otherwise the caller's team.
	MyTeams(ctx context.Context, p identity.Principal) ([]team.Team, error)

	// GetTeam returns one team. Admins may read any team; others only their own.
	GetTeam(ctx context.Context, p identity.Principal, id int64) (*team.Team, error)

	// VisibleTasks lists tasks for exactly one scope, sorted by due date.
	// Returns domain.ErrScopeRequired when no scope is given.
	VisibleTasks(ctx context.Context, p identity.Principal, view task.View) ([]task.Task, error)

	// EligibleUsers returns active members that belong to no team, computed
	// from a fresh membership scan.
	EligibleUsers(ctx context.Context, p identity.Principal) ([]account.User, error)
}

// MaintenanceService audits and repairs cross-store invariants.
type MaintenanceService interface {
	// Audit reports every invariant violation across the stores.
	Audit(ctx context.Context, p identity.Principal) (*AuditReport, error)

	// Reconcile repairs role drift. With dryRun it only reports the repairs
	// it would make.
	Reconcile(ctx context.Context, p identity.Principal, dryRun bool) (*ReconcileReport, error)
}

// AuditReport is the outcome of an invariant audit.
type AuditReport struct {
	CheckedAt  time.Time
	Users      int
	Teams      int
	Violations []invariant.Violation
}

// Repair is one role change made (or planned) by Reconcile.
type Repair struct {
	UserID  int64
	From    account.Role
	To      account.Role
	Applied bool
	Error   string
}

// ReconcileReport is the outcome of a reconcile run.
type ReconcileReport struct {
	DryRun    bool
	Repairs   []Repair
	Remaining []invariant.Violation
}
