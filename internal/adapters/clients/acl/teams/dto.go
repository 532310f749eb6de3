// Package teams holds the Team Store's wire types and the translators
// between them and the team domain.
package teams

// TeamDTO matches the Team Store's Team schema.
type TeamDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	LeaderID    int64   `json:"leader_id"`
	MemberIDs   []int64 `json:"member_ids"`
	CreatedAt   string  `json:"created_at"`
}

// TeamListResponseDTO matches the Team Store's list response.
type TeamListResponseDTO struct {
	Teams []TeamDTO `json:"teams"`
	Count int64     `json:"count"`
}

// CreateTeamRequestDTO is the body of POST /api/v1/teams.
type CreateTeamRequestDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	LeaderID    int64   `json:"leader_id"`
	MemberIDs   []int64 `json:"member_ids"`
}

// UpdateTeamRequestDTO is the body of PATCH /api/v1/teams/{id}.
// Nil means "do not change this field".
type UpdateTeamRequestDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LeaderID    *int64  `json:"leader_id,omitempty"`
}

// AddMemberRequestDTO is the body of POST /api/v1/teams/{id}/members.
type AddMemberRequestDTO struct {
	UserID int64 `json:"user_id"`
}
