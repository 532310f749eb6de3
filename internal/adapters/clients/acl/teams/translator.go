package teams

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

// ToDomainTeam converts a TeamDTO to a domain Team.
func ToDomainTeam(dto *TeamDTO) team.Team {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)

	return team.Team{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		LeaderID:    dto.LeaderID,
		Members:     slices.Clone(dto.MemberIDs),
		CreatedAt:   createdAt,
	}
}

// ToDomainTeamList converts a list response to domain teams.
func ToDomainTeamList(dto TeamListResponseDTO) []team.Team {
	out := make([]team.Team, len(dto.Teams))
	for i := range dto.Teams {
		out[i] = ToDomainTeam(&dto.Teams[i])
	}
	return out
}

// FromDomainTeam converts a domain Team to its wire form.
func FromDomainTeam(t *team.Team) TeamDTO {
	members := t.Members
	if members == nil {
		members = []int64{}
	}
	return TeamDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		LeaderID:    t.LeaderID,
		MemberIDs:   slices.Clone(members),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainTeamList builds a list response.
func FromDomainTeamList(ts []team.Team) TeamListResponseDTO {
	dtos := make([]TeamDTO, len(ts))
	for i := range ts {
		dtos[i] = FromDomainTeam(&ts[i])
	}
	return TeamListResponseDTO{Teams: dtos, Count: int64(len(dtos))}
}

// ToCreateTeamRequest converts a new domain Team to a create request.
func ToCreateTeamRequest(t *team.Team) CreateTeamRequestDTO {
	return CreateTeamRequestDTO{
		Name:        t.Name,
		Description: t.Description,
		LeaderID:    t.LeaderID,
		MemberIDs:   slices.Clone(t.Members),
	}
}

// ToDomainNewTeam converts a create request to a domain Team without an id.
func ToDomainNewTeam(req CreateTeamRequestDTO) team.Team {
	return team.Team{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
		Members:     slices.Clone(req.MemberIDs),
	}
}

// ToUpdateTeamRequest converts a domain Patch to its wire form.
func ToUpdateTeamRequest(p team.Patch) UpdateTeamRequestDTO {
	return UpdateTeamRequestDTO{
		Name:        p.Name,
		Description: p.Description,
		LeaderID:    p.LeaderID,
	}
}

// ToDomainPatch converts an update request to a domain Patch.
func ToDomainPatch(req UpdateTeamRequestDTO) team.Patch {
	return team.Patch{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	}
}
