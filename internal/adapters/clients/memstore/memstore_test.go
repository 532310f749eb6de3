package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

func TestAccounts_Signup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewAccounts()

	first, err := s.Signup(ctx, account.User{Username: "root"})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if first.Role != account.RoleAdmin || !first.Active {
		t.Errorf("first user = %+v, want active admin", first)
	}

	second, err := s.Signup(ctx, account.User{Username: "ana"})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if second.Role != account.RoleMember || second.Active {
		t.Errorf("second user = %+v, want inactive member", second)
	}

	if _, err := s.Signup(ctx, account.User{Username: "ANA"}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate Signup() = %v, want ErrConflict", err)
	}
}

func TestAccounts_UpdateUserIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewAccounts()
	u := s.Put(account.User{Username: "ana", Role: account.RoleMember, Active: true})

	for range 2 {
		got, err := s.UpdateUser(ctx, u.ID, account.SetRole(account.RoleTeamLeader))
		if err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
		if got.Role != account.RoleTeamLeader {
			t.Errorf("Role = %q, want team_leader", got.Role)
		}
	}
}

func TestTeams_SingleMembershipAndUniqueName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewTeams()

	core, err := s.CreateTeam(ctx, &team.Team{Name: "Core", LeaderID: 1, Members: []int64{1}})
	if err != nil {
		t.Fatalf("CreateTeam() error = %v", err)
	}

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "duplicate name", run: func() error {
			_, err := s.CreateTeam(ctx, &team.Team{Name: "core", LeaderID: 2, Members: []int64{2}})
			return err
		}},
		{name: "leader already in a team", run: func() error {
			_, err := s.CreateTeam(ctx, &team.Team{Name: "Edge", LeaderID: 1, Members: []int64{1}})
			return err
		}},
		{name: "add existing member", run: func() error {
			_, err := s.AddMember(ctx, core.ID, 1)
			return err
		}},
	}

	for _, tt := range tests {
		if err := tt.run(); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("%s: error = %v, want ErrConflict", tt.name, err)
		}
	}
}

func TestTeams_RemoveMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewTeams()
	tm := s.Put(team.Team{Name: "Core", LeaderID: 1, Members: []int64{1, 2}})

	got, err := s.RemoveMember(ctx, tm.ID, 2)
	if err != nil {
		t.Fatalf("RemoveMember() error = %v", err)
	}
	if got.HasMember(2) {
		t.Errorf("Members = %v, want 2 removed", got.Members)
	}
	if _, err := s.RemoveMember(ctx, tm.ID, 2); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second RemoveMember() = %v, want ErrNotFound", err)
	}
}

func TestTeams_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewTeams()
	tm := s.Put(team.Team{Name: "Core", LeaderID: 1, Members: []int64{1}})

	got, _ := s.GetTeam(ctx, tm.ID)
	got.Members[0] = 99

	again, _ := s.GetTeam(ctx, tm.ID)
	if again.Members[0] != 1 {
		t.Error("GetTeam() returned a slice aliased to store state")
	}
}

func TestTasks_DeleteCascadesAttachments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewTasks()
	tk, err := s.CreateTask(ctx, &task.Task{
		Title: "Ship", LeaderID: 1, Status: task.StatusTodo, Priority: task.PriorityLow,
		DueDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	a, err := s.AddAttachment(ctx, &task.Attachment{TaskID: tk.ID, ObjectName: "1/x_a.txt"})
	if err != nil {
		t.Fatalf("AddAttachment() error = %v", err)
	}

	if err := s.DeleteTask(ctx, tk.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if _, err := s.GetAttachment(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetAttachment() after delete = %v, want ErrNotFound", err)
	}
}

func TestFault_FailNth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewAccounts()
	u := s.Put(account.User{Username: "ana"})
	boom := errors.New("boom")
	s.SetFault(FailNth(boom, "GetUser", 2))

	if _, err := s.GetUser(ctx, u.ID); err != nil {
		t.Fatalf("first GetUser() error = %v", err)
	}
	if _, err := s.GetUser(ctx, u.ID); !errors.Is(err, boom) {
		t.Fatalf("second GetUser() = %v, want injected error", err)
	}
	if _, err := s.GetUser(ctx, u.ID); err != nil {
		t.Fatalf("third GetUser() error = %v", err)
	}
}

func TestLostResponse_WriteIsApplied(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	accounts := NewAccounts()
	u := accounts.Put(account.User{Username: "ana", Role: account.RoleMember, Active: true})
	accounts.SetLostResponse(FailOn(domain.ErrUnavailable, "UpdateUser"))

	if _, err := accounts.UpdateUser(ctx, u.ID, account.SetActive(false)); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("UpdateUser() = %v, want ErrUnavailable", err)
	}
	accounts.SetLostResponse(nil)
	got, err := accounts.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got.Active {
		t.Error("Active = true, want the write applied despite the error")
	}

	teams := NewTeams()
	teams.SetLostResponse(FailOn(domain.ErrUnavailable, "CreateTeam", "DeleteTeam"))
	if _, err := teams.CreateTeam(ctx, &team.Team{Name: "core", LeaderID: u.ID, Members: []int64{u.ID}}); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("CreateTeam() = %v, want ErrUnavailable", err)
	}
	found, err := teams.ListTeams(ctx, team.Filter{Name: "CORE", LeaderID: u.ID})
	if err != nil || len(found) != 1 {
		t.Fatalf("ListTeams() = %v, %v; want the created team", found, err)
	}
	if err := teams.DeleteTeam(ctx, found[0].ID); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("DeleteTeam() = %v, want ErrUnavailable", err)
	}
	if _, err := teams.GetTeam(ctx, found[0].ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTeam() after delete = %v, want ErrNotFound", err)
	}
}

func TestLostResponse_RejectedWriteIsNotAffected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewTeams()
	s.SetLostResponse(FailOn(domain.ErrUnavailable, "AddMember"))

	if _, err := s.AddMember(ctx, 99, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AddMember() on missing team = %v, want ErrNotFound", err)
	}
}
