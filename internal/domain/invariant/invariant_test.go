package invariant

import (
	"testing"

	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

func countBy(vs []Violation, name Name) int {
	n := 0
	for _, v := range vs {
		if v.Invariant == name {
			n++
		}
	}
	return n
}

func TestCheckTeams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		teams []team.Team
		want  map[Name]int
	}{
		{
			name: "consistent teams",
			teams: []team.Team{
				{ID: 1, LeaderID: 10, Members: []int64{10, 11}},
				{ID: 2, LeaderID: 20, Members: []int64{20}},
			},
			want: map[Name]int{},
		},
		{
			name:  "leader outside member set",
			teams: []team.Team{{ID: 1, LeaderID: 10, Members: []int64{11}}},
			want:  map[Name]int{LeaderIsMember: 1},
		},
		{
			name:  "empty team",
			teams: []team.Team{{ID: 1, LeaderID: 10}},
			want:  map[Name]int{NonEmptyTeam: 1, LeaderIsMember: 1},
		},
		{
			name: "user in two teams",
			teams: []team.Team{
				{ID: 1, LeaderID: 10, Members: []int64{10, 30}},
				{ID: 2, LeaderID: 20, Members: []int64{20, 30}},
			},
			want: map[Name]int{SingleMembership: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CheckTeams(tt.teams)
			total := 0
			for name, n := range tt.want {
				total += n
				if c := countBy(got, name); c != n {
					t.Errorf("violations of %s = %d, want %d (%v)", name, c, n, got)
				}
			}
			if len(got) != total {
				t.Errorf("len(violations) = %d, want %d (%v)", len(got), total, got)
			}
		})
	}
}

func TestCheckRoles(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 1, LeaderID: 10, Members: []int64{10, 11}}}

	tests := []struct {
		name  string
		users []account.User
		want  int
	}{
		{
			name: "leader role matches",
			users: []account.User{
				{ID: 10, Role: account.RoleTeamLeader},
				{ID: 11, Role: account.RoleMember},
			},
			want: 0,
		},
		{
			name:  "leader of team still a member",
			users: []account.User{{ID: 10, Role: account.RoleMember}},
			want:  1,
		},
		{
			name: "team leader without a team",
			users: []account.User{
				{ID: 10, Role: account.RoleTeamLeader},
				{ID: 12, Role: account.RoleTeamLeader},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CheckRoles(tt.users, teams)
			if len(got) != tt.want {
				t.Errorf("len(CheckRoles()) = %d, want %d (%v)", len(got), tt.want, got)
			}
			for _, v := range got {
				if v.Invariant != RoleMatchesLeadership {
					t.Errorf("Invariant = %q, want %q", v.Invariant, RoleMatchesLeadership)
				}
			}
		})
	}
}

func TestCheckRoles_LeaderOfTwoTeams(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 1, LeaderID: 10, Members: []int64{10}},
		{ID: 2, LeaderID: 10, Members: []int64{10}},
	}
	users := []account.User{{ID: 10, Role: account.RoleTeamLeader}}

	got := CheckRoles(users, teams)
	if len(got) != 1 {
		t.Fatalf("len(CheckRoles()) = %d, want 1", len(got))
	}
}
