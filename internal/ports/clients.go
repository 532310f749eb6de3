package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

// AccountStore is the client port for the Account Store.
// Implemented by the ACL adapter; called by the application layer.
type AccountStore interface {
	// GetUser returns a single user by ID.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, id int64) (*account.User, error)

	// ListUsers returns users matching the filter. Pass a zero-value Filter
	// to list all users.
	ListUsers(ctx context.Context, filter account.Filter) ([]account.User, error)

	// UpdateUser applies a role/active patch and returns the updated user.
	// Applying a patch that matches the current state succeeds.
	// Returns domain.ErrNotFound if the user does not exist.
	UpdateUser(ctx context.Context, id int64, patch account.Patch) (*account.User, error)
}

// TeamStore is the client port for the Team Store. The store owns team
// records and membership edges; it knows nothing about roles.
type TeamStore interface {
	// GetTeam returns a single team by ID with its member set.
	// Returns domain.ErrNotFound if the team does not exist.
	GetTeam(ctx context.Context, id int64) (*team.Team, error)

	// ListTeams returns teams matching the filter.
	ListTeams(ctx context.Context, filter team.Filter) ([]team.Team, error)

	// CreateTeam creates a team with its initial member set.
	// Returns domain.ErrConflict if the name is taken or a member already
	// belongs to another team.
	CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error)

	// UpdateTeam applies a patch and returns the updated team.
	// Returns domain.ErrNotFound if the team does not exist.
	UpdateTeam(ctx context.Context, id int64, patch team.Patch) (*team.Team, error)

	// DeleteTeam deletes a team and its membership edges.
	// Returns domain.ErrNotFound if the team does not exist.
	DeleteTeam(ctx context.Context, id int64) error

	// AddMember adds a membership edge and returns the updated team.
	// Returns domain.ErrConflict if the user already belongs to a team.
	AddMember(ctx context.Context, teamID, userID int64) (*team.Team, error)

	// RemoveMember removes a membership edge and returns the updated team.
	// Returns domain.ErrNotFound if the user is not a member.
	RemoveMember(ctx context.Context, teamID, userID int64) (*team.Team, error)
}

// TaskStore is the client port for the Task Store, including the comment
// log and attachment metadata.
type TaskStore interface {
	// GetTask returns a single task by ID with its comments.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*task.Task, error)

	// ListTasks returns tasks matching the filter.
	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)

	// CreateTask creates a task and returns it with server-assigned fields.
	CreateTask(ctx context.Context, t *task.Task) (*task.Task, error)

	// UpdateTask applies a patch and returns the updated task.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, patch task.Patch) (*task.Task, error)

	// DeleteTask deletes a task with its comments and attachment metadata.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// AppendComment appends to the task's comment log.
	AppendComment(ctx context.Context, taskID int64, c *task.Comment) (*task.Comment, error)

	// AddAttachment records attachment metadata for a stored blob.
	AddAttachment(ctx context.Context, a *task.Attachment) (*task.Attachment, error)

	// ListAttachments returns the attachment metadata of a task.
	ListAttachments(ctx context.Context, taskID int64) ([]task.Attachment, error)

	// GetAttachment returns one attachment's metadata.
	// Returns domain.ErrNotFound if the attachment does not exist.
	GetAttachment(ctx context.Context, id int64) (*task.Attachment, error)
}

// BlobStore stores attachment bytes. Transfers stream; nothing is buffered
// whole in memory.
type BlobStore interface {
	// Put stores the content read from r under name and returns the number
	// of bytes written.
	Put(ctx context.Context, name, contentType string, r io.Reader) (int64, error)

	// Open returns a reader for the named object. The caller closes it.
	// Returns domain.ErrNotFound if the object does not exist.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// IdentityVerifier turns a bearer token into the canonical principal.
type IdentityVerifier interface {
	// Verify validates the token signature and claims.
	// Returns domain.ErrUnauthenticated for any invalid token.
	Verify(ctx context.Context, token string) (identity.Principal, error)
}
