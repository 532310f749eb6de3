package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/memstore"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

func TestUserService_DeactivateMemberScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	tm, leader := f.createTeam(t, "Platform")
	m := f.member("ben")
	if _, err := f.teamSvc.AddMember(ctx, leader, tm.ID, m.ID); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}

	got, err := f.userSvc.DeactivateUser(ctx, f.admin, m.ID)
	if err != nil {
		t.Fatalf("DeactivateUser() error = %v", err)
	}
	if got.Active {
		t.Error("Active = true after DeactivateUser")
	}
	after, err := f.teams.GetTeam(ctx, tm.ID)
	if err != nil {
		t.Fatalf("GetTeam() error = %v", err)
	}
	if after.HasMember(m.ID) {
		t.Errorf("Members = %v, want %d removed", after.Members, m.ID)
	}
	f.assertInvariants(t)
}

func TestUserService_DeactivateRestoresMembershipOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	tm, _ := f.createTeam(t, "Platform")
	m := f.member("ben")
	if _, err := f.teamSvc.AddMember(ctx, f.admin, tm.ID, m.ID); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}

	f.accounts.SetFault(memstore.FailOn(errStoreDown, "UpdateUser"))
	_, err := f.userSvc.DeactivateUser(ctx, f.admin, m.ID)

	if !errors.Is(err, domain.ErrCompensated) {
		t.Fatalf("DeactivateUser() = %v, want ErrCompensated", err)
	}
	after, err := f.teams.GetTeam(ctx, tm.ID)
	if err != nil {
		t.Fatalf("GetTeam() error = %v", err)
	}
	if !after.HasMember(m.ID) {
		t.Errorf("Members = %v, want %d restored", after.Members, m.ID)
	}
	if !f.getUser(t, m.ID).Active {
		t.Error("user was deactivated despite the failure")
	}
	f.assertInvariants(t)
}

func TestUserService_DeactivateLostResponseIsCompensated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	tm, _ := f.createTeam(t, "Platform")
	m := f.member("ben")
	if _, err := f.teamSvc.AddMember(ctx, f.admin, tm.ID, m.ID); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}

	f.accounts.SetLostResponse(memstore.FailNth(domain.ErrUnavailable, "UpdateUser", 1))
	_, err := f.userSvc.DeactivateUser(ctx, f.admin, m.ID)

	if !errors.Is(err, domain.ErrCompensated) {
		t.Fatalf("DeactivateUser() = %v, want ErrCompensated", err)
	}
	if !f.getUser(t, m.ID).Active {
		t.Error("Active = false, want the applied deactivation rolled back")
	}
	after, err := f.teams.GetTeam(ctx, tm.ID)
	if err != nil {
		t.Fatalf("GetTeam() error = %v", err)
	}
	if !after.HasMember(m.ID) {
		t.Errorf("Members = %v, want %d restored", after.Members, m.ID)
	}
	f.assertInvariants(t)

	f.accounts.SetLostResponse(nil)
	got, err := f.userSvc.DeactivateUser(ctx, f.admin, m.ID)
	if err != nil {
		t.Fatalf("retry DeactivateUser() error = %v", err)
	}
	if got.Active {
		t.Error("Active = true after retry")
	}
	f.assertInvariants(t)
}

func TestUserService_DeactivateRollbackKeepsInactiveFlag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	tm, _ := f.createTeam(t, "Platform")
	idle := f.addUser("ben", account.RoleMember, false)
	f.teams.Put(team.Team{ID: tm.ID, Name: tm.Name, LeaderID: tm.LeaderID, Members: append(tm.Members, idle.ID)})

	f.accounts.SetLostResponse(memstore.FailNth(domain.ErrUnavailable, "UpdateUser", 1))
	_, err := f.userSvc.DeactivateUser(ctx, f.admin, idle.ID)

	if !errors.Is(err, domain.ErrCompensated) {
		t.Fatalf("DeactivateUser() = %v, want ErrCompensated", err)
	}
	if f.getUser(t, idle.ID).Active {
		t.Error("rollback activated an account that was inactive before the call")
	}
}

func TestUserService_DeactivateRejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	_, leader := f.createTeam(t, "Platform")

	if _, err := f.userSvc.DeactivateUser(ctx, f.admin, leader.UserID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("DeactivateUser(leader) = %v, want ErrConflict", err)
	}
	if _, err := f.userSvc.DeactivateUser(ctx, f.admin, f.admin.UserID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("DeactivateUser(self) = %v, want ErrConflict", err)
	}
	if _, err := f.userSvc.DeactivateUser(ctx, leader, f.member("ben").ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("DeactivateUser() by a team leader = %v, want ErrForbidden", err)
	}
	if !f.getUser(t, leader.UserID).Active {
		t.Error("leader was deactivated")
	}
}

func TestUserService_ActivateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.addUser("new", account.RoleMember, false)

	got, err := f.userSvc.ActivateUser(ctx, f.admin, u.ID)
	if err != nil {
		t.Fatalf("ActivateUser() error = %v", err)
	}
	if !got.Active {
		t.Error("Active = false after ActivateUser")
	}

	// Already active: no write is attempted.
	f.accounts.SetFault(memstore.FailOn(errStoreDown, "UpdateUser"))
	if _, err := f.userSvc.ActivateUser(ctx, f.admin, u.ID); err != nil {
		t.Errorf("ActivateUser() on an active account = %v, want nil", err)
	}
}

func TestUserService_PromoteMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(f *fixture) int64
		wantErr error
	}{
		{
			name: "member leading one team",
			setup: func(f *fixture) int64 {
				u := f.member("ana")
				f.teams.Put(team.Team{Name: "A", LeaderID: u.ID, Members: []int64{u.ID}})
				return u.ID
			},
		},
		{
			name: "member leading no team",
			setup: func(f *fixture) int64 {
				return f.member("ana").ID
			},
			wantErr: domain.ErrConflict,
		},
		{
			name: "already a team leader",
			setup: func(f *fixture) int64 {
				return f.addUser("lead", account.RoleTeamLeader, true).ID
			},
			wantErr: domain.ErrConflict,
		},
		{
			name: "inactive member",
			setup: func(f *fixture) int64 {
				u := f.addUser("idle", account.RoleMember, false)
				f.teams.Put(team.Team{Name: "A", LeaderID: u.ID, Members: []int64{u.ID}})
				return u.ID
			},
			wantErr: domain.ErrNotEligible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			id := tt.setup(f)

			got, err := f.userSvc.PromoteMember(context.Background(), f.admin, id)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("PromoteMember() = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PromoteMember() error = %v", err)
			}
			if got.Role != account.RoleTeamLeader {
				t.Errorf("Role = %q, want team_leader", got.Role)
			}
			f.assertInvariants(t)
		})
	}
}

func TestUserService_DemoteMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	_, leader := f.createTeam(t, "Platform")
	orphan := f.addUser("orphan", account.RoleTeamLeader, true)

	if _, err := f.userSvc.DemoteMember(ctx, f.admin, leader.UserID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("DemoteMember(current leader) = %v, want ErrConflict", err)
	}
	if _, err := f.userSvc.DemoteMember(ctx, f.admin, f.member("ben").ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("DemoteMember(member) = %v, want ErrConflict", err)
	}

	got, err := f.userSvc.DemoteMember(ctx, f.admin, orphan.ID)
	if err != nil {
		t.Fatalf("DemoteMember() error = %v", err)
	}
	if got.Role != account.RoleMember {
		t.Errorf("Role = %q, want member", got.Role)
	}
	f.assertInvariants(t)
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	ana := f.member("ana")
	ben := f.member("ben")

	if _, err := f.userSvc.GetUser(ctx, f.principal(ana), ana.ID); err != nil {
		t.Errorf("GetUser(self) error = %v", err)
	}
	if _, err := f.userSvc.GetUser(ctx, f.principal(ana), ben.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("GetUser(other) = %v, want ErrForbidden", err)
	}
	if _, err := f.userSvc.GetUser(ctx, f.admin, ben.ID); err != nil {
		t.Errorf("GetUser() by admin error = %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.member("ana")
	f.addUser("idle", account.RoleMember, false)

	active := true
	got, err := f.userSvc.ListUsers(ctx, f.admin, account.Filter{Role: account.RoleMember, Active: &active})
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(got) != 1 || got[0].Username != "ana" {
		t.Errorf("ListUsers() = %+v, want only ana", got)
	}

	if _, err := f.userSvc.ListUsers(ctx, f.admin, account.Filter{Role: "owner"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ListUsers(bad role) = %v, want ErrValidation", err)
	}
}
