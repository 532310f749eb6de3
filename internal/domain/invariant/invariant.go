// Package invariant checks the cross-store rules that no single store can
// enforce on its own. The checks are pure: callers supply snapshots of the
// stores and get back every violation found.
package invariant

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

// Name identifies a cross-store rule.
type Name string

const (
	// LeaderIsMember: a team's leader is in its member set.
	LeaderIsMember Name = "leader_is_member"
	// NonEmptyTeam: a team has at least one member.
	NonEmptyTeam Name = "non_empty_team"
	// SingleMembership: a user belongs to at most one team.
	SingleMembership Name = "single_membership"
	// RoleMatchesLeadership: a user has the team leader role exactly when
	// they lead one team.
	RoleMatchesLeadership Name = "role_matches_leadership"
	// AssigneeInTeam: a team leader's task is assigned within the team.
	AssigneeInTeam Name = "assignee_in_team"
)

// Violation describes one broken rule.
type Violation struct {
	Invariant Name
	TeamID    int64
	UserID    int64
	Detail    string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: team=%d user=%d: %s", v.Invariant, v.TeamID, v.UserID, v.Detail)
}

// CheckTeams reports leader-is-member, non-empty-team and single-membership
// violations.
func CheckTeams(teams []team.Team) []Violation {
	var out []Violation
	for i := range teams {
		t := &teams[i]
		if len(t.Members) == 0 {
			out = append(out, Violation{Invariant: NonEmptyTeam, TeamID: t.ID, Detail: "team has no members"})
		}
		if !t.HasMember(t.LeaderID) {
			out = append(out, Violation{
				Invariant: LeaderIsMember, TeamID: t.ID, UserID: t.LeaderID,
				Detail: "leader is not a member",
			})
		}
	}

	dups := team.Duplicates(teams)
	users := make([]int64, 0, len(dups))
	for uid := range dups {
		users = append(users, uid)
	}
	slices.Sort(users)
	for _, uid := range users {
		out = append(out, Violation{
			Invariant: SingleMembership, UserID: uid,
			Detail: fmt.Sprintf("member of teams %v", dups[uid]),
		})
	}
	return out
}

// CheckRoles reports role-matches-leadership violations: team leaders who
// lead no team or several, and non-leaders who lead a team.
func CheckRoles(users []account.User, teams []team.Team) []Violation {
	led := make(map[int64][]int64)
	for _, t := range teams {
		led[t.LeaderID] = append(led[t.LeaderID], t.ID)
	}

	var out []Violation
	for _, u := range users {
		teamsLed := led[u.ID]
		switch {
		case u.Role == account.RoleTeamLeader && len(teamsLed) == 0:
			out = append(out, Violation{
				Invariant: RoleMatchesLeadership, UserID: u.ID,
				Detail: "team leader role without a team",
			})
		case u.Role == account.RoleTeamLeader && len(teamsLed) > 1:
			out = append(out, Violation{
				Invariant: RoleMatchesLeadership, UserID: u.ID,
				Detail: fmt.Sprintf("leads %d teams %v", len(teamsLed), teamsLed),
			})
		case u.Role != account.RoleTeamLeader && len(teamsLed) > 0:
			out = append(out, Violation{
				Invariant: RoleMatchesLeadership, TeamID: teamsLed[0], UserID: u.ID,
				Detail: fmt.Sprintf("leads team %d with role %s", teamsLed[0], u.Role),
			})
		}
	}
	return out
}

// Check runs every rule that needs only users and teams.
func Check(users []account.User, teams []team.Team) []Violation {
	return append(CheckTeams(teams), CheckRoles(users, teams)...)
}
