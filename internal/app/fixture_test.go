package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/blob"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/memstore"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/invariant"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func int64Ptr(v int64) *int64 { return &v }

func day(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

// fixture wires every service to one set of in-memory stores.
type fixture struct {
	accounts *memstore.Accounts
	teams    *memstore.Teams
	tasks    *memstore.Tasks
	blobFS   afero.Fs

	teamSvc   *TeamService
	userSvc   *UserService
	taskSvc   *TaskService
	projector *Projector
	maint     *Maintenance

	admin identity.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		accounts: memstore.NewAccounts(),
		teams:    memstore.NewTeams(),
		tasks:    memstore.NewTasks(),
		blobFS:   afero.NewMemMapFs(),
	}
	stores := Stores{Accounts: f.accounts, Teams: f.teams, Tasks: f.tasks}
	settings := Settings{StepTimeout: time.Second, CompensationTimeout: time.Second, TeamScanWorkers: 2}

	f.teamSvc = NewTeamService(stores, settings, nil, discardLogger())
	f.userSvc = NewUserService(stores, settings, nil, discardLogger())
	f.taskSvc = NewTaskService(stores, blob.New(f.blobFS, 1<<20), settings, nil, discardLogger())
	f.projector = NewProjector(stores, settings, nil, discardLogger())
	f.maint = NewMaintenance(stores, settings, nil, discardLogger())

	f.admin = f.principal(f.addUser("root", account.RoleAdmin, true))
	return f
}

func (f *fixture) addUser(name string, role account.Role, active bool) account.User {
	return f.accounts.Put(account.User{Username: name, Role: role, Active: active})
}

func (f *fixture) member(name string) account.User {
	return f.addUser(name, account.RoleMember, true)
}

func (f *fixture) principal(u account.User) identity.Principal {
	return identity.FromUser(&u)
}

func (f *fixture) getUser(t *testing.T, id int64) *account.User {
	t.Helper()
	u, err := f.accounts.GetUser(context.Background(), id)
	if err != nil {
		t.Fatalf("GetUser(%d) error = %v", id, err)
	}
	return u
}

func (f *fixture) allTeams(t *testing.T) []team.Team {
	t.Helper()
	teams, err := f.teams.ListTeams(context.Background(), team.Filter{})
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	return teams
}

// createTeam runs CreateTeamWithLeader for a fresh member and returns the
// team and its (now promoted) leader.
func (f *fixture) createTeam(t *testing.T, name string) (*team.Team, identity.Principal) {
	t.Helper()
	leader := f.member(name + "-lead")
	tm, err := f.teamSvc.CreateTeamWithLeader(context.Background(), f.admin, createReq(name, leader.ID))
	if err != nil {
		t.Fatalf("CreateTeamWithLeader(%q) error = %v", name, err)
	}
	return tm, f.principal(*f.getUser(t, leader.ID))
}

func (f *fixture) addTask(leaderID int64, assignee *int64, due time.Time) task.Task {
	return f.tasks.Put(task.Task{
		Title:        "task",
		LeaderID:     leaderID,
		AssignedToID: assignee,
		Status:       task.StatusTodo,
		Priority:     task.PriorityMedium,
		DueDate:      due,
	})
}

// assertInvariants fails the test on any leader-is-member, non-empty-team,
// single-membership or role-matches-leadership violation.
func (f *fixture) assertInvariants(t *testing.T) {
	t.Helper()
	users, err := f.accounts.ListUsers(context.Background(), account.Filter{})
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	for _, v := range invariant.Check(users, f.allTeams(t)) {
		t.Errorf("invariant violated: %s", v)
	}
}
